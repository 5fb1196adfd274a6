package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/repositories"
	"github.com/diamondsched/tournament-server/standings"
	"golang.org/x/sync/errgroup"
)

type TournamentService interface {
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	AvailablePlayoffFormats(ctx context.Context, id string) ([]models.PlayoffFormat, error)
	ConfigurePlayoffs(ctx context.Context, id string, format models.PlayoffFormat, pattern models.SeedingPattern) (*models.Tournament, error)
	AutoUpdateTournamentStatusesByDates(ctx context.Context) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	poolRepo       repositories.PoolRepository
	teamRepo       repositories.TeamRepository
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	poolRepo repositories.PoolRepository,
	teamRepo repositories.TeamRepository,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		poolRepo:       poolRepo,
		teamRepo:       teamRepo,
		logger:         logger,
	}
}

// GetTournament returns the tournament with its pools and teams attached.
func (s *tournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, pools, teams, err := s.loadWithCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	tournament.Pools = pools
	tournament.Teams = teams
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) AvailablePlayoffFormats(ctx context.Context, id string) ([]models.PlayoffFormat, error) {
	tournament, _, teams, err := s.loadWithCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return standings.AvailableFormats(tournament.Type, len(teams)), nil
}

// ConfigurePlayoffs validates the format and pattern against the
// tournament's actual team and pool counts before anything is persisted.
// An illegal configuration is rejected outright, never adjusted.
func (s *tournamentService) ConfigurePlayoffs(ctx context.Context, id string, format models.PlayoffFormat, pattern models.SeedingPattern) (*models.Tournament, error) {
	tournament, pools, teams, err := s.loadWithCounts(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := standings.ValidateFormat(format, len(teams), len(pools)); err != nil {
		return nil, err
	}
	if err := standings.ValidatePattern(pattern, format, len(pools)); err != nil {
		return nil, err
	}

	if err := s.tournamentRepo.UpdatePlayoffConfig(ctx, id, format, pattern); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to update playoff config for tournament %s: %w", id, err)
	}

	tournament.PlayoffFormat = &format
	tournament.SeedingPattern = &pattern
	return tournament, nil
}

// AutoUpdateTournamentStatusesByDates flips upcoming tournaments to active
// once their start date passes, and active ones to completed after their end
// date. Run periodically from a scheduler goroutine.
func (s *tournamentService) AutoUpdateTournamentStatusesByDates(ctx context.Context) error {
	now := time.Now()

	started, err := s.tournamentRepo.ListStartedBefore(ctx, models.StatusUpcoming, now)
	if err != nil {
		return fmt.Errorf("failed to list upcoming tournaments: %w", err)
	}
	for _, t := range started {
		if err := s.tournamentRepo.UpdateStatus(ctx, t.ID, models.StatusActive); err != nil {
			return fmt.Errorf("failed to activate tournament %s: %w", t.ID, err)
		}
		s.logger.Info("tournament activated", slog.String("tournament_id", t.ID))
	}

	ended, err := s.tournamentRepo.ListEndedBefore(ctx, models.StatusActive, now)
	if err != nil {
		return fmt.Errorf("failed to list active tournaments: %w", err)
	}
	for _, t := range ended {
		if err := s.tournamentRepo.UpdateStatus(ctx, t.ID, models.StatusCompleted); err != nil {
			return fmt.Errorf("failed to complete tournament %s: %w", t.ID, err)
		}
		s.logger.Info("tournament completed", slog.String("tournament_id", t.ID))
	}

	return nil
}

func (s *tournamentService) loadWithCounts(ctx context.Context, id string) (*models.Tournament, []models.Pool, []models.Team, error) {
	var (
		tournament *models.Tournament
		pools      []models.Pool
		teams      []models.Team
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tournamentRepo.GetByID(gCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrTournamentNotFound) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to fetch tournament %s: %w", id, err)
		}
		tournament = t
		return nil
	})
	g.Go(func() error {
		p, err := s.poolRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list pools for tournament %s: %w", id, err)
		}
		pools = p
		return nil
	})
	g.Go(func() error {
		t, err := s.teamRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list teams for tournament %s: %w", id, err)
		}
		teams = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return tournament, pools, teams, nil
}
