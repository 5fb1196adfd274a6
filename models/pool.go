package models

type Pool struct {
	ID            string  `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	TournamentID  string  `json:"tournament_id" db:"tournament_id"`
	AgeDivisionID *string `json:"age_division_id,omitempty" db:"age_division_id"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}
