package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-events/internal/events/db"
	"ms-events/internal/models"
)

func setupTestDB() (*db.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	err = bunDB.ResetModel(context.Background(), (*models.Event)(nil))
	if err != nil {
		return nil, err
	}

	return &db.DB{Bun: bunDB}, nil
}

func sampleEvent(id, slug string) models.Event {
	return models.Event{
		ID:          id,
		Title:       "React Summit 2026",
		Slug:        slug,
		Description: "The biggest React conference of the year.",
		Overview:    "Two days of talks and workshops.",
		Image:       "/images/react-summit.png",
		Venue:       "RAI Convention Centre",
		Location:    "Amsterdam, Netherlands",
		Date:        "2026-06-12",
		Time:        "09:00",
		Mode:        "hybrid",
		Audience:    "Frontend developers",
		Organizer:   "GitNation",
		Agenda:      []string{"Opening keynote", "Workshops"},
		Tags:        []string{"react", "frontend"},
	}
}

func TestCreateAndGetEvent(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	event := sampleEvent("event-1", "react-summit-2026")
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	retrieved, err := database.GetEventByID("event-1")
	if err != nil {
		t.Fatalf("Failed to retrieve event: %v", err)
	}
	if retrieved.Slug != event.Slug {
		t.Errorf("Expected slug %s, got %s", event.Slug, retrieved.Slug)
	}
	if len(retrieved.Agenda) != 2 {
		t.Errorf("Expected 2 agenda items, got %d", len(retrieved.Agenda))
	}
	if retrieved.CreatedAt.IsZero() || retrieved.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be assigned on create")
	}

	bySlug, err := database.GetEventBySlug("react-summit-2026")
	if err != nil {
		t.Fatalf("Failed to retrieve event by slug: %v", err)
	}
	if bySlug.ID != "event-1" {
		t.Errorf("Expected event-1, got %s", bySlug.ID)
	}
}

func TestGetEventNotFound(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	if _, err := database.GetEventByID("missing"); !errors.Is(err, models.ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
	if _, err := database.GetEventBySlug("missing"); !errors.Is(err, models.ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestCreateEventSlugConflict(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	if err := database.CreateEvent(sampleEvent("event-1", "react-summit-2026")); err != nil {
		t.Fatalf("Failed to create first event: %v", err)
	}

	err = database.CreateEvent(sampleEvent("event-2", "react-summit-2026"))
	if !errors.Is(err, models.ErrSlugConflict) {
		t.Errorf("Expected ErrSlugConflict, got %v", err)
	}
}

func TestCreateEventDuplicateIDIsNotSlugConflict(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	if err := database.CreateEvent(sampleEvent("event-1", "react-summit-2026")); err != nil {
		t.Fatalf("Failed to create first event: %v", err)
	}

	// Same primary key, different slug: a unique violation, but not on
	// the slug index.
	err = database.CreateEvent(sampleEvent("event-1", "react-summit-2027"))
	if err == nil {
		t.Fatal("Expected an error for a duplicate id")
	}
	if errors.Is(err, models.ErrSlugConflict) {
		t.Errorf("Duplicate id must not surface as a slug conflict: %v", err)
	}
	if !errors.Is(err, models.ErrStorageUnavailable) {
		t.Errorf("Expected a storage error, got %v", err)
	}
}

func TestUpdateEvent(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	event := sampleEvent("event-1", "react-summit-2026")
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	event.Venue = "A different hall"
	event.Tags = []string{"react"}
	if err := database.UpdateEvent(event); err != nil {
		t.Fatalf("Failed to update event: %v", err)
	}

	retrieved, err := database.GetEventByID("event-1")
	if err != nil {
		t.Fatalf("Failed to retrieve updated event: %v", err)
	}
	if retrieved.Venue != "A different hall" {
		t.Errorf("Expected updated venue, got %s", retrieved.Venue)
	}
	if len(retrieved.Tags) != 1 {
		t.Errorf("Expected 1 tag, got %d", len(retrieved.Tags))
	}
}

func TestEventExists(t *testing.T) {
	database, err := setupTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	if err := database.CreateEvent(sampleEvent("event-1", "react-summit-2026")); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	exists, err := database.EventExists("event-1")
	if err != nil {
		t.Fatalf("EventExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected event-1 to exist")
	}

	exists, err = database.EventExists("missing")
	if err != nil {
		t.Fatalf("EventExists failed: %v", err)
	}
	if exists {
		t.Error("Expected missing event to not exist")
	}
}
