package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/repositories"
	"github.com/diamondsched/tournament-server/standings"
	"golang.org/x/sync/errgroup"
)

// StandingsService recomputes pool standings and playoff seeds from the
// game snapshot on every call. Nothing is cached: a corrected score is
// reflected the next time anyone asks, and there is no stale table to
// invalidate. Tournament-sized inputs make the recomputation cheap.
type StandingsService interface {
	GetPoolStandings(ctx context.Context, tournamentID string) ([]standings.PoolStandings, error)
	GetPlayoffSeeds(ctx context.Context, tournamentID string) ([]models.TeamStandingRow, error)
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	poolRepo       repositories.PoolRepository
	teamRepo       repositories.TeamRepository
	gameRepo       repositories.GameRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	poolRepo repositories.PoolRepository,
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		poolRepo:       poolRepo,
		teamRepo:       teamRepo,
		gameRepo:       gameRepo,
	}
}

// tournamentSnapshot is the immutable input to one standings computation.
type tournamentSnapshot struct {
	tournament *models.Tournament
	pools      []models.Pool
	teams      []models.Team
	games      []models.Game
}

func (s *standingsService) GetPoolStandings(ctx context.Context, tournamentID string) ([]standings.PoolStandings, error) {
	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return computePoolStandings(snap)
}

func (s *standingsService) GetPlayoffSeeds(ctx context.Context, tournamentID string) ([]models.TeamStandingRow, error) {
	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	t := snap.tournament
	if t.PlayoffFormat == nil || t.SeedingPattern == nil {
		return nil, ErrPlayoffNotConfigured
	}

	poolStandings, err := computePoolStandings(snap)
	if err != nil {
		return nil, err
	}

	seeds, err := standings.ComputeSeeds(poolStandings, *t.PlayoffFormat, *t.SeedingPattern)
	if err != nil {
		return nil, fmt.Errorf("seeding tournament %s: %w", t.ID, err)
	}
	return seeds, nil
}

// loadSnapshot fetches the tournament with its pools, teams and games in
// parallel. All four must load; standings computed over a partial snapshot
// would be worse than an explicit failure.
func (s *standingsService) loadSnapshot(ctx context.Context, tournamentID string) (*tournamentSnapshot, error) {
	snap := &tournamentSnapshot{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tournament, err := s.tournamentRepo.GetByID(gCtx, tournamentID)
		if err != nil {
			if errors.Is(err, repositories.ErrTournamentNotFound) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to fetch tournament %s: %w", tournamentID, err)
		}
		snap.tournament = tournament
		return nil
	})
	g.Go(func() error {
		pools, err := s.poolRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list pools for tournament %s: %w", tournamentID, err)
		}
		snap.pools = pools
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list teams for tournament %s: %w", tournamentID, err)
		}
		snap.teams = teams
		return nil
	})
	g.Go(func() error {
		games, err := s.gameRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list games for tournament %s: %w", tournamentID, err)
		}
		snap.games = games
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// computePoolStandings runs the engine pipeline for every pool: normalize
// the pool's games, accumulate, tiebreak-sort. The first malformed game
// aborts the whole computation.
func computePoolStandings(snap *tournamentSnapshot) ([]standings.PoolStandings, error) {
	teamsByPool := make(map[string][]models.Team, len(snap.pools))
	for _, t := range snap.teams {
		teamsByPool[t.PoolID] = append(teamsByPool[t.PoolID], t)
	}
	gamesByPool := make(map[string][]models.Game, len(snap.pools))
	for _, g := range snap.games {
		gamesByPool[g.PoolID] = append(gamesByPool[g.PoolID], g)
	}

	result := make([]standings.PoolStandings, 0, len(snap.pools))
	for _, pool := range snap.pools {
		poolGames := gamesByPool[pool.ID]

		var results []standings.TeamGameResult
		for _, game := range poolGames {
			normalized, err := standings.NormalizeGame(game)
			if err != nil {
				return nil, fmt.Errorf("pool %s: %w", pool.Name, err)
			}
			results = append(results, normalized...)
		}

		rows := standings.Accumulate(pool, teamsByPool[pool.ID], results)
		rows = standings.SortPool(rows, poolGames)
		result = append(result, standings.PoolStandings{Pool: pool, Rows: rows})
	}
	return result, nil
}
