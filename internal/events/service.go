package events

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ms-events/internal/models"
	"ms-events/internal/validate"
)

type DBLayer interface {
	CreateEvent(event models.Event) error
	UpdateEvent(event models.Event) error
	GetEventByID(id string) (*models.Event, error)
	GetEventBySlug(slug string) (*models.Event, error)
	ListEvents() ([]models.Event, error)
}

// EventCache is the optional read-side cache for slug lookups. Writes
// invalidate; the booking existence check never goes through here.
type EventCache interface {
	GetEventBySlug(slug string) (*models.Event, bool)
	SetEvent(event models.Event)
	Invalidate(slug string)
}

type KafkaPublisher interface {
	PublishEventCreated(event models.Event) error
	PublishEventUpdated(event models.Event) error
}

type EventService struct {
	DB    DBLayer
	Cache EventCache
	Kafka KafkaPublisher
}

func NewEventService(db DBLayer, cache EventCache, kafka KafkaPublisher) *EventService {
	return &EventService{DB: db, Cache: cache, Kafka: kafka}
}

// Required text fields, checked in this order. The first empty one is
// reported and validation stops there.
var requiredFields = []string{
	"title", "description", "overview", "image", "venue", "location",
	"date", "time", "mode", "audience", "organizer",
}

// SubmitEvent validates and normalizes a new event candidate, then hands
// it to storage. On a unique-index violation the storage layer's
// ErrSlugConflict passes through untouched.
func (s *EventService) SubmitEvent(candidate models.Event) (*models.Event, error) {
	if err := validateAndNormalize(&candidate, nil); err != nil {
		return nil, err
	}

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}

	if err := s.DB.CreateEvent(candidate); err != nil {
		return nil, err
	}

	created, err := s.DB.GetEventByID(candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("event %s created but could not be read back: %w", candidate.ID, err)
	}

	if s.Kafka != nil {
		if err := s.Kafka.PublishEventCreated(*created); err != nil {
			fmt.Printf("Kafka publish error (event created): %v\n", err)
		}
	}

	return created, nil
}

// UpdateEvent loads the stored event and re-runs the pipeline against the
// update. The slug is recomputed only when the title changed; date and
// time are re-normalized only when they changed.
func (s *EventService) UpdateEvent(id string, update models.Event) (*models.Event, error) {
	prev, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	update.ID = prev.ID
	if err := validateAndNormalize(&update, prev); err != nil {
		return nil, err
	}

	if err := s.DB.UpdateEvent(update); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(prev.Slug)
		s.Cache.Invalidate(update.Slug)
	}

	updated, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("event %s updated but could not be read back: %w", id, err)
	}

	if s.Kafka != nil {
		if err := s.Kafka.PublishEventUpdated(*updated); err != nil {
			fmt.Printf("Kafka publish error (event updated): %v\n", err)
		}
	}

	return updated, nil
}

func (s *EventService) GetEventBySlug(slug string) (*models.Event, error) {
	if s.Cache != nil {
		if event, ok := s.Cache.GetEventBySlug(slug); ok {
			return event, nil
		}
	}

	event, err := s.DB.GetEventBySlug(slug)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.SetEvent(*event)
	}
	return event, nil
}

func (s *EventService) GetEventByID(id string) (*models.Event, error) {
	return s.DB.GetEventByID(id)
}

func (s *EventService) ListEvents() ([]models.Event, error) {
	return s.DB.ListEvents()
}

// validateAndNormalize runs the ordered validation pass, mutating the
// candidate into its canonical form. prev is nil on create. Steps run in a
// fixed order and stop at the first failure, so the caller always gets the
// single most specific error.
func validateAndNormalize(candidate, prev *models.Event) error {
	candidate.Title = strings.TrimSpace(candidate.Title)

	// Slug follows the title. Recomputed on create, when the title
	// changed, or when no slug was carried over.
	if prev == nil || prev.Title != candidate.Title || candidate.Slug == "" {
		if candidate.Title == "" {
			return &MissingFieldError{Field: "title"}
		}
		slug := validate.Slugify(candidate.Title)
		if slug == "" {
			return &MissingFieldError{Field: "title"}
		}
		candidate.Slug = slug
	}

	if prev == nil || prev.Date != candidate.Date {
		if !validate.IsNonEmpty(candidate.Date) {
			return &MissingFieldError{Field: "date"}
		}
		date, err := validate.NormalizeDate(strings.TrimSpace(candidate.Date))
		if err != nil {
			return err
		}
		candidate.Date = date
	}

	if prev == nil || prev.Time != candidate.Time {
		if !validate.IsNonEmpty(candidate.Time) {
			return &MissingFieldError{Field: "time"}
		}
		clock, err := validate.NormalizeTime(strings.TrimSpace(candidate.Time))
		if err != nil {
			return err
		}
		candidate.Time = clock
	}

	candidate.Description = strings.TrimSpace(candidate.Description)
	candidate.Overview = strings.TrimSpace(candidate.Overview)
	candidate.Image = strings.TrimSpace(candidate.Image)
	candidate.Venue = strings.TrimSpace(candidate.Venue)
	candidate.Location = strings.TrimSpace(candidate.Location)
	candidate.Mode = strings.TrimSpace(candidate.Mode)
	candidate.Audience = strings.TrimSpace(candidate.Audience)
	candidate.Organizer = strings.TrimSpace(candidate.Organizer)

	for _, field := range requiredFields {
		if !validate.IsNonEmpty(fieldValue(candidate, field)) {
			return &MissingFieldError{Field: field}
		}
	}

	candidate.Agenda = trimItems(candidate.Agenda)
	if !validate.IsNonEmptySlice(candidate.Agenda) {
		return ErrEmptyAgenda
	}
	candidate.Tags = trimItems(candidate.Tags)
	if !validate.IsNonEmptySlice(candidate.Tags) {
		return ErrEmptyTags
	}

	return nil
}

func fieldValue(e *models.Event, field string) string {
	switch field {
	case "title":
		return e.Title
	case "description":
		return e.Description
	case "overview":
		return e.Overview
	case "image":
		return e.Image
	case "venue":
		return e.Venue
	case "location":
		return e.Location
	case "date":
		return e.Date
	case "time":
		return e.Time
	case "mode":
		return e.Mode
	case "audience":
		return e.Audience
	case "organizer":
		return e.Organizer
	}
	return ""
}

func trimItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
