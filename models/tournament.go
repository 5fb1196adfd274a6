package models

import "time"

// TournamentStatus mirrors the ENUM in the database.
type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "upcoming"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
	StatusCanceled  TournamentStatus = "canceled"
)

// TournamentType constrains which playoff formats are available.
type TournamentType string

const (
	// TypePoolPlayPlayoffs is the usual shape: round-robin pools followed by
	// a seeded elimination bracket.
	TypePoolPlayPlayoffs TournamentType = "pool_play_playoffs"
	// TypeSingleElimination skips pool play entirely, so no pool-based
	// playoff format applies.
	TypeSingleElimination TournamentType = "single_elimination"
)

type Tournament struct {
	ID          string           `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Type        TournamentType   `json:"type" db:"type"`
	Status      TournamentStatus `json:"status" db:"status"`
	OrganizerID *string          `json:"organizer_id,omitempty" db:"organizer_id"`
	Location    *string          `json:"location,omitempty" db:"location"`
	StartDate   time.Time        `json:"start_date" db:"start_date"`
	EndDate     time.Time        `json:"end_date" db:"end_date"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`

	// Playoff configuration, nil until the organizer picks one. Both are
	// validated against the team/pool counts before being persisted.
	PlayoffFormat  *PlayoffFormat  `json:"playoff_format,omitempty" db:"playoff_format"`
	SeedingPattern *SeedingPattern `json:"seeding_pattern,omitempty" db:"seeding_pattern"`

	Pools []Pool `json:"pools,omitempty" db:"-"`
	Teams []Team `json:"teams,omitempty" db:"-"`
	Games []Game `json:"games,omitempty" db:"-"`
}
