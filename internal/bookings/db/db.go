package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"ms-events/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateBooking → insert new booking
func (d *DB) CreateBooking(booking models.Booking) error {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := d.Bun.NewInsert().Model(&booking).Exec(context.Background())
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (d *DB) GetBookingByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, storageErr(err)
	}
	return &booking, nil
}

func (d *DB) ListBookingsByEvent(eventID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Scan(context.Background())
	if err != nil {
		return nil, storageErr(err)
	}
	return bookings, nil
}

// EventExists → existence query against the events table at booking time.
// No caching: the answer must reflect current storage state.
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

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
}
