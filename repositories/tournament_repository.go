package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/diamondsched/tournament-server/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name conflict")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	UpdatePlayoffConfig(ctx context.Context, id string, format models.PlayoffFormat, pattern models.SeedingPattern) error
	UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error
	ListStartedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error)
	ListEndedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, type, status, organizer_id, location, start_date, end_date, playoff_format, seeding_pattern, created_at`

func scanTournament(scanner interface{ Scan(...any) error }) (*models.Tournament, error) {
	var t models.Tournament
	var format, pattern *string
	err := scanner.Scan(
		&t.ID,
		&t.Name,
		&t.Type,
		&t.Status,
		&t.OrganizerID,
		&t.Location,
		&t.StartDate,
		&t.EndDate,
		&format,
		&pattern,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if format != nil {
		f := models.PlayoffFormat(*format)
		t.PlayoffFormat = &f
	}
	if pattern != nil {
		p := models.SeedingPattern(*pattern)
		t.SeedingPattern = &p
	}
	return &t, nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	query := `
		INSERT INTO tournaments (id, name, type, status, organizer_id, location, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		tournament.ID,
		tournament.Name,
		tournament.Type,
		tournament.Status,
		tournament.OrganizerID,
		tournament.Location,
		tournament.StartDate,
		tournament.EndDate,
	).Scan(&tournament.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "tournaments_name_key" {
				return ErrTournamentNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	t, err := scanTournament(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY start_date DESC, id`
	return r.queryTournaments(ctx, query)
}

func (r *postgresTournamentRepository) UpdatePlayoffConfig(ctx context.Context, id string, format models.PlayoffFormat, pattern models.SeedingPattern) error {
	query := `
		UPDATE tournaments
		SET playoff_format = $2, seeding_pattern = $3
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, string(format), string(pattern))
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) ListStartedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE status = $1 AND start_date <= $2 ORDER BY start_date, id`
	return r.queryTournaments(ctx, query, status, moment)
}

func (r *postgresTournamentRepository) ListEndedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE status = $1 AND end_date <= $2 ORDER BY end_date, id`
	return r.queryTournaments(ctx, query, status, moment)
}

func (r *postgresTournamentRepository) queryTournaments(ctx context.Context, query string, args ...any) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}
