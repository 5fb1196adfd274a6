package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/diamondsched/tournament-server/models"
	"github.com/google/uuid"
)

var ErrPoolNotFound = errors.New("pool not found")

type PoolRepository interface {
	Create(ctx context.Context, pool *models.Pool) error
	GetByID(ctx context.Context, id string) (*models.Pool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Pool, error)
	Delete(ctx context.Context, id string) error
}

type postgresPoolRepository struct {
	db *sql.DB
}

func NewPostgresPoolRepository(db *sql.DB) PoolRepository {
	return &postgresPoolRepository{db: db}
}

func (r *postgresPoolRepository) Create(ctx context.Context, pool *models.Pool) error {
	if pool.ID == "" {
		pool.ID = uuid.NewString()
	}
	query := `
		INSERT INTO pools (id, name, tournament_id, age_division_id)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, pool.ID, pool.Name, pool.TournamentID, pool.AgeDivisionID)
	return err
}

func (r *postgresPoolRepository) GetByID(ctx context.Context, id string) (*models.Pool, error) {
	query := `SELECT id, name, tournament_id, age_division_id FROM pools WHERE id = $1`
	var p models.Pool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.TournamentID, &p.AgeDivisionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPoolRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Pool, error) {
	query := `
		SELECT id, name, tournament_id, age_division_id
		FROM pools
		WHERE tournament_id = $1
		ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pools := make([]models.Pool, 0)
	for rows.Next() {
		var p models.Pool
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.TournamentID, &p.AgeDivisionID); scanErr != nil {
			return nil, scanErr
		}
		pools = append(pools, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return pools, nil
}

func (r *postgresPoolRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPoolNotFound)
}
