package analytics_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-events/internal/analytics"
	"ms-events/internal/models"
)

func setupTestDB(t *testing.T) *bun.DB {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if err := bunDB.ResetModel(context.Background(), (*models.Booking)(nil)); err != nil {
		t.Fatalf("Failed to reset booking model: %v", err)
	}
	return bunDB
}

func TestGetEventBookingAnalytics(t *testing.T) {
	bunDB := setupTestDB(t)
	service := analytics.NewService(bunDB)

	day1 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 6, 2, 9, 30, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ID: "b1", EventID: "event-1", Email: "a@example.com", CreatedAt: day1, UpdatedAt: day1},
		{ID: "b2", EventID: "event-1", Email: "b@example.com", CreatedAt: day1, UpdatedAt: day1},
		{ID: "b3", EventID: "event-1", Email: "c@example.com", CreatedAt: day2, UpdatedAt: day2},
		{ID: "b4", EventID: "event-2", Email: "d@example.com", CreatedAt: day2, UpdatedAt: day2},
	}
	if _, err := bunDB.NewInsert().Model(&bookings).Exec(context.Background()); err != nil {
		t.Fatalf("Failed to seed bookings: %v", err)
	}

	result, err := service.GetEventBookingAnalytics(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("GetEventBookingAnalytics failed: %v", err)
	}

	if result.TotalBookings != 3 {
		t.Errorf("Expected 3 bookings, got %d", result.TotalBookings)
	}
	if len(result.DailyBookings) != 2 {
		t.Fatalf("Expected 2 daily buckets, got %d", len(result.DailyBookings))
	}
	if result.DailyBookings[0].Date != "2026-06-01" || result.DailyBookings[0].Bookings != 2 {
		t.Errorf("Unexpected first bucket: %+v", result.DailyBookings[0])
	}
	if result.DailyBookings[1].Date != "2026-06-02" || result.DailyBookings[1].Bookings != 1 {
		t.Errorf("Unexpected second bucket: %+v", result.DailyBookings[1])
	}
}

func TestGetEventBookingAnalyticsEmpty(t *testing.T) {
	bunDB := setupTestDB(t)
	service := analytics.NewService(bunDB)

	result, err := service.GetEventBookingAnalytics(context.Background(), "no-bookings")
	if err != nil {
		t.Fatalf("GetEventBookingAnalytics failed: %v", err)
	}
	if result.TotalBookings != 0 {
		t.Errorf("Expected 0 bookings, got %d", result.TotalBookings)
	}
	if len(result.DailyBookings) != 0 {
		t.Errorf("Expected no daily buckets, got %d", len(result.DailyBookings))
	}
}
