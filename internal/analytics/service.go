package analytics

import (
	"context"

	"github.com/uptrace/bun"

	"ms-events/internal/models"
)

// Service handles analytics operations
type Service struct {
	db *bun.DB
}

// NewService creates a new analytics service
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// EventBookingAnalytics represents aggregated booking data for an event
type EventBookingAnalytics struct {
	EventID       string              `json:"event_id"`
	TotalBookings int                 `json:"total_bookings"`
	DailyBookings []DailyBookingCount `json:"daily_bookings"`
}

// DailyBookingCount contains the booking count for a single day
type DailyBookingCount struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

// GetEventBookingAnalytics returns booking counts for a specific event,
// grouped by the calendar day the booking was created.
func (s *Service) GetEventBookingAnalytics(ctx context.Context, eventID string) (*EventBookingAnalytics, error) {
	var bookings []models.Booking
	err := s.db.NewSelect().
		Model(&bookings).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	result := &EventBookingAnalytics{
		EventID:       eventID,
		TotalBookings: len(bookings),
	}

	byDay := make(map[string]int)
	var days []string
	for _, booking := range bookings {
		day := booking.CreatedAt.UTC().Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day]++
	}

	for _, day := range days {
		result.DailyBookings = append(result.DailyBookings, DailyBookingCount{
			Date:     day,
			Bookings: byDay[day],
		})
	}

	return result, nil
}
