package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/diamondsched/tournament-server/models"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id string) (*models.Game, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Game, error)
	ListByPool(ctx context.Context, poolID string) ([]models.Game, error)
	UpdateResult(ctx context.Context, game *models.Game) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, tournament_id, pool_id, home_team_id, away_team_id,
	home_score, away_score, home_innings_batted, away_innings_batted,
	forfeit_status, status, scheduled_time, diamond`

func scanGame(scanner interface{ Scan(...any) error }) (*models.Game, error) {
	var g models.Game
	err := scanner.Scan(
		&g.ID,
		&g.TournamentID,
		&g.PoolID,
		&g.HomeTeamID,
		&g.AwayTeamID,
		&g.HomeScore,
		&g.AwayScore,
		&g.HomeInningsBatted,
		&g.AwayInningsBatted,
		&g.ForfeitStatus,
		&g.Status,
		&g.ScheduledTime,
		&g.Diamond,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	query := `
		INSERT INTO games (id, tournament_id, pool_id, home_team_id, away_team_id,
			home_score, away_score, home_innings_batted, away_innings_batted,
			forfeit_status, status, scheduled_time, diamond)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		game.ID,
		game.TournamentID,
		game.PoolID,
		game.HomeTeamID,
		game.AwayTeamID,
		game.HomeScore,
		game.AwayScore,
		game.HomeInningsBatted,
		game.AwayInningsBatted,
		game.ForfeitStatus,
		game.Status,
		game.ScheduledTime,
		game.Diamond,
	)
	return err
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	g, err := scanGame(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *postgresGameRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE tournament_id = $1 ORDER BY scheduled_time, id`
	return r.queryGames(ctx, query, tournamentID)
}

func (r *postgresGameRepository) ListByPool(ctx context.Context, poolID string) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE pool_id = $1 ORDER BY scheduled_time, id`
	return r.queryGames(ctx, query, poolID)
}

func (r *postgresGameRepository) UpdateResult(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games
		SET home_score = $2,
			away_score = $3,
			home_innings_batted = $4,
			away_innings_batted = $5,
			forfeit_status = $6,
			status = $7
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		game.ID,
		game.HomeScore,
		game.AwayScore,
		game.HomeInningsBatted,
		game.AwayInningsBatted,
		game.ForfeitStatus,
		game.Status,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) queryGames(ctx context.Context, query string, args ...any) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		g, scanErr := scanGame(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		games = append(games, *g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}
