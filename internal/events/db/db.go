package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"ms-events/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateEvent → insert new event. The unique index on slug is the only
// line of defense against concurrent submissions that derive the same
// slug; the loser gets ErrSlugConflict.
func (d *DB) CreateEvent(event models.Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := d.Bun.NewInsert().Model(&event).Exec(context.Background())
	if err != nil {
		if isSlugUniqueViolation(err) {
			return models.ErrSlugConflict
		}
		return storageErr(err)
	}
	return nil
}

// UpdateEvent → update allowed fields, bumping updated_at
func (d *DB) UpdateEvent(event models.Event) error {
	event.UpdatedAt = time.Now().UTC()

	_, err := d.Bun.NewUpdate().
		Model(&event).
		Column("title", "slug", "description", "overview", "image", "venue",
			"location", "date", "time", "mode", "audience", "organizer",
			"agenda", "tags", "updated_at").
		Where("id = ?", event.ID).
		Exec(context.Background())
	if err != nil {
		if isSlugUniqueViolation(err) {
			return models.ErrSlugConflict
		}
		return storageErr(err)
	}
	return nil
}

func (d *DB) GetEventByID(id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, storageErr(err)
	}
	return &event, nil
}

func (d *DB) GetEventBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("slug = ?", slug).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, storageErr(err)
	}
	return &event, nil
}

func (d *DB) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Order("date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, storageErr(err)
	}
	return events, nil
}

// EventExists → single existence query, used by the booking write path.
// Always hits the database so the answer reflects current state.
func (d *DB) EventExists(eventID string) (bool, error) {
	exists, err := d.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Where("id = ?", eventID).
		Exists(context.Background())
	if err != nil {
		return false, storageErr(err)
	}
	return exists, nil
}

// isSlugUniqueViolation recognizes a violation of the slug unique index
// from either the postgres driver (code 23505 on a slug constraint) or
// the sqlite driver used in tests. Other unique violations, such as a
// duplicate primary key, stay storage errors.
func isSlugUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "slug")
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: events.slug")
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
}
