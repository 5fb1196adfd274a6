package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/diamondsched/tournament-server/live"
	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/repositories"
	"github.com/diamondsched/tournament-server/standings"
)

// RecordResultInput carries a final score (or forfeit ruling) for a game.
// Innings batted default to a full seven when omitted.
type RecordResultInput struct {
	HomeScore         *int                 `json:"home_score"`
	AwayScore         *int                 `json:"away_score"`
	HomeInningsBatted *float64             `json:"home_innings_batted,omitempty"`
	AwayInningsBatted *float64             `json:"away_innings_batted,omitempty"`
	ForfeitStatus     models.ForfeitStatus `json:"forfeit_status,omitempty"`
}

const defaultInningsBatted = 7.0

type GameService interface {
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Game, error)
	RecordResult(ctx context.Context, gameID string, input RecordResultInput) (*models.Game, error)
}

type gameService struct {
	gameRepo         repositories.GameRepository
	standingsService StandingsService
	hub              *live.Hub
}

func NewGameService(
	gameRepo repositories.GameRepository,
	standingsService StandingsService,
	hub *live.Hub,
) GameService {
	return &gameService{
		gameRepo:         gameRepo,
		standingsService: standingsService,
		hub:              hub,
	}
}

func (s *gameService) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}
	return game, nil
}

func (s *gameService) ListByTournament(ctx context.Context, tournamentID string) ([]models.Game, error) {
	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for tournament %s: %w", tournamentID, err)
	}
	return games, nil
}

// RecordResult finalizes a game (including score corrections on an already
// completed game), persists it, and pushes refreshed standings to the
// tournament's live feed. The candidate result is validated through the same
// normalizer the standings pipeline uses, so nothing the engine would reject
// can be stored.
func (s *gameService) RecordResult(ctx context.Context, gameID string, input RecordResultInput) (*models.Game, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch input.ForfeitStatus {
	case "", models.ForfeitNone:
		game.ForfeitStatus = models.ForfeitNone
	case models.ForfeitHome, models.ForfeitAway:
		game.ForfeitStatus = input.ForfeitStatus
	default:
		return nil, fmt.Errorf("%w: unknown forfeit status %q", ErrValidationFailed, input.ForfeitStatus)
	}

	game.HomeScore = input.HomeScore
	game.AwayScore = input.AwayScore
	game.HomeInningsBatted = defaultInningsBatted
	game.AwayInningsBatted = defaultInningsBatted
	if input.HomeInningsBatted != nil {
		game.HomeInningsBatted = *input.HomeInningsBatted
	}
	if input.AwayInningsBatted != nil {
		game.AwayInningsBatted = *input.AwayInningsBatted
	}
	if game.HomeInningsBatted < 0 || game.AwayInningsBatted < 0 {
		return nil, fmt.Errorf("%w: innings batted must not be negative", ErrValidationFailed)
	}
	game.Status = models.GameStatusCompleted

	if _, err := standings.NormalizeGame(*game); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.gameRepo.UpdateResult(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update result for game %s: %w", gameID, err)
	}

	s.broadcastStandings(ctx, game)
	return game, nil
}

// broadcastStandings is best-effort: a failed push never fails the result
// entry that triggered it.
func (s *gameService) broadcastStandings(ctx context.Context, game *models.Game) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToTournament(game.TournamentID, live.Message{
		Type:    live.MessageGameUpdated,
		Payload: game,
	})

	poolStandings, err := s.standingsService.GetPoolStandings(ctx, game.TournamentID)
	if err != nil {
		log.Printf("failed to recompute standings for tournament %s after game %s: %v",
			game.TournamentID, game.ID, err)
		return
	}
	s.hub.BroadcastToTournament(game.TournamentID, live.Message{
		Type:    live.MessageStandingsUpdated,
		Payload: poolStandings,
	})
}
