package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          string    `bun:"id,pk" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Description string    `bun:"description,notnull" json:"description"`
	Overview    string    `bun:"overview,notnull" json:"overview"`
	Image       string    `bun:"image,notnull" json:"image"`
	Venue       string    `bun:"venue,notnull" json:"venue"`
	Location    string    `bun:"location,notnull" json:"location"`
	Date        string    `bun:"date,notnull" json:"date"` // YYYY-MM-DD
	Time        string    `bun:"time,notnull" json:"time"` // HH:MM, 24h
	Mode        string    `bun:"mode,notnull" json:"mode"`
	Audience    string    `bun:"audience,notnull" json:"audience"`
	Organizer   string    `bun:"organizer,notnull" json:"organizer"`
	Agenda      []string  `bun:"agenda" json:"agenda"`
	Tags        []string  `bun:"tags" json:"tags"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
