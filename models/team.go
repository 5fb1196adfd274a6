package models

import "time"

type Team struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	City         *string   `json:"city,omitempty" db:"city"`
	Division     *string   `json:"division,omitempty" db:"division"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	PoolID       string    `json:"pool_id" db:"pool_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Pool *Pool `json:"pool,omitempty" db:"-"`
}
