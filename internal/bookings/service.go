package bookings

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ms-events/internal/models"
	"ms-events/internal/validate"
)

type DBLayer interface {
	CreateBooking(booking models.Booking) error
	GetBookingByID(id string) (*models.Booking, error)
	ListBookingsByEvent(eventID string) ([]models.Booking, error)
	EventExists(eventID string) (bool, error)
}

type KafkaPublisher interface {
	PublishBookingCreated(booking models.Booking) error
}

type BookingService struct {
	DB    DBLayer
	Kafka KafkaPublisher
}

func NewBookingService(db DBLayer, kafka KafkaPublisher) *BookingService {
	return &BookingService{DB: db, Kafka: kafka}
}

// SubmitBooking runs the booking write pipeline in order: event id
// present, event exists, email valid, then the delegated write.
// The existence check and the insert are two separate storage calls; an
// event deleted in between slips through. That window is accepted here
// rather than closed with a conditional insert.
func (s *BookingService) SubmitBooking(candidate models.Booking) (*models.Booking, error) {
	candidate.EventID = strings.TrimSpace(candidate.EventID)
	if candidate.EventID == "" {
		return nil, ErrMissingEventID
	}

	exists, err := s.DB.EventExists(candidate.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event %s: %w", candidate.EventID, err)
	}
	if !exists {
		return nil, ErrDanglingEvent
	}

	candidate.Email = strings.ToLower(strings.TrimSpace(candidate.Email))
	if !validate.IsValidEmail(candidate.Email) {
		return nil, ErrInvalidEmail
	}

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}

	if err := s.DB.CreateBooking(candidate); err != nil {
		return nil, err
	}

	created, err := s.DB.GetBookingByID(candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("booking %s created but could not be read back: %w", candidate.ID, err)
	}

	if s.Kafka != nil {
		if err := s.Kafka.PublishBookingCreated(*created); err != nil {
			fmt.Printf("Kafka publish error (booking created): %v\n", err)
		}
	}

	return created, nil
}

func (s *BookingService) ListBookingsByEvent(eventID string) ([]models.Booking, error) {
	return s.DB.ListBookingsByEvent(eventID)
}
