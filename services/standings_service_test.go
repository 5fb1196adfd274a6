package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/repositories"
	"github.com/diamondsched/tournament-server/standings"
)

// In-memory repositories backing the service tests. Only the list/get
// methods the standings path touches are populated.

type stubTournamentRepo struct {
	tournament *models.Tournament
}

func (s *stubTournamentRepo) Create(ctx context.Context, t *models.Tournament) error { return nil }

func (s *stubTournamentRepo) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	if s.tournament == nil || s.tournament.ID != id {
		return nil, repositories.ErrTournamentNotFound
	}
	copied := *s.tournament
	return &copied, nil
}

func (s *stubTournamentRepo) List(ctx context.Context) ([]models.Tournament, error) {
	return nil, nil
}

func (s *stubTournamentRepo) UpdatePlayoffConfig(ctx context.Context, id string, format models.PlayoffFormat, pattern models.SeedingPattern) error {
	return nil
}

func (s *stubTournamentRepo) UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error {
	return nil
}

func (s *stubTournamentRepo) ListStartedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error) {
	return nil, nil
}

func (s *stubTournamentRepo) ListEndedBefore(ctx context.Context, status models.TournamentStatus, moment time.Time) ([]models.Tournament, error) {
	return nil, nil
}

type stubPoolRepo struct {
	pools []models.Pool
}

func (s *stubPoolRepo) Create(ctx context.Context, p *models.Pool) error { return nil }

func (s *stubPoolRepo) GetByID(ctx context.Context, id string) (*models.Pool, error) {
	return nil, repositories.ErrPoolNotFound
}

func (s *stubPoolRepo) ListByTournament(ctx context.Context, tournamentID string) ([]models.Pool, error) {
	return s.pools, nil
}

func (s *stubPoolRepo) Delete(ctx context.Context, id string) error { return nil }

type stubTeamRepo struct {
	teams []models.Team
}

func (s *stubTeamRepo) Create(ctx context.Context, t *models.Team) error { return nil }

func (s *stubTeamRepo) GetByID(ctx context.Context, id string) (*models.Team, error) {
	return nil, repositories.ErrTeamNotFound
}

func (s *stubTeamRepo) ListByTournament(ctx context.Context, tournamentID string) ([]models.Team, error) {
	return s.teams, nil
}

func (s *stubTeamRepo) ListByPool(ctx context.Context, poolID string) ([]models.Team, error) {
	var out []models.Team
	for _, t := range s.teams {
		if t.PoolID == poolID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTeamRepo) Delete(ctx context.Context, id string) error { return nil }

type stubGameRepo struct {
	games []models.Game
	err   error
}

func (s *stubGameRepo) Create(ctx context.Context, g *models.Game) error { return nil }

func (s *stubGameRepo) GetByID(ctx context.Context, id string) (*models.Game, error) {
	for i := range s.games {
		if s.games[i].ID == id {
			copied := s.games[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrGameNotFound
}

func (s *stubGameRepo) ListByTournament(ctx context.Context, tournamentID string) ([]models.Game, error) {
	return s.games, s.err
}

func (s *stubGameRepo) ListByPool(ctx context.Context, poolID string) ([]models.Game, error) {
	var out []models.Game
	for _, g := range s.games {
		if g.PoolID == poolID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *stubGameRepo) UpdateResult(ctx context.Context, g *models.Game) error {
	for i := range s.games {
		if s.games[i].ID == g.ID {
			s.games[i] = *g
			return nil
		}
	}
	return repositories.ErrGameNotFound
}

func intPtr(v int) *int { return &v }

func completedGame(id, poolID, home, away string, homeScore, awayScore int) models.Game {
	return models.Game{
		ID:                id,
		TournamentID:      "t1",
		PoolID:            poolID,
		HomeTeamID:        home,
		AwayTeamID:        away,
		HomeScore:         intPtr(homeScore),
		AwayScore:         intPtr(awayScore),
		HomeInningsBatted: 7,
		AwayInningsBatted: 7,
		ForfeitStatus:     models.ForfeitNone,
		Status:            models.GameStatusCompleted,
	}
}

// twoPoolFixture is a played-out tournament: two pools of two, one game per
// pool, playoffs configured as a standard top-4 bracket.
func twoPoolFixture() (*stubTournamentRepo, *stubPoolRepo, *stubTeamRepo, *stubGameRepo) {
	format := models.FormatTop4
	pattern := models.SeedingStandard
	tournamentRepo := &stubTournamentRepo{
		tournament: &models.Tournament{
			ID:             "t1",
			Name:           "Summer Classic",
			Type:           models.TypePoolPlayPlayoffs,
			Status:         models.StatusActive,
			PlayoffFormat:  &format,
			SeedingPattern: &pattern,
		},
	}
	poolRepo := &stubPoolRepo{pools: []models.Pool{
		{ID: "pool-a", Name: "A", TournamentID: "t1"},
		{ID: "pool-b", Name: "B", TournamentID: "t1"},
	}}
	teamRepo := &stubTeamRepo{teams: []models.Team{
		{ID: "hawks", Name: "Hawks", TournamentID: "t1", PoolID: "pool-a"},
		{ID: "owls", Name: "Owls", TournamentID: "t1", PoolID: "pool-a"},
		{ID: "ravens", Name: "Ravens", TournamentID: "t1", PoolID: "pool-b"},
		{ID: "eagles", Name: "Eagles", TournamentID: "t1", PoolID: "pool-b"},
	}}
	gameRepo := &stubGameRepo{games: []models.Game{
		completedGame("g1", "pool-a", "hawks", "owls", 5, 2),
		completedGame("g2", "pool-b", "ravens", "eagles", 9, 1),
	}}
	return tournamentRepo, poolRepo, teamRepo, gameRepo
}

// TestGetPoolStandings_RanksPools checks the full pipeline against a small
// played-out tournament.
func TestGetPoolStandings_RanksPools(t *testing.T) {
	svc := NewStandingsService(twoPoolFixture())

	poolStandings, err := svc.GetPoolStandings(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, poolStandings, 2)

	poolA := poolStandings[0]
	require.Len(t, poolA.Rows, 2)
	assert.Equal(t, "hawks", poolA.Rows[0].TeamID)
	assert.Equal(t, 1, poolA.Rows[0].PoolRank)
	assert.Equal(t, 1, poolA.Rows[0].Wins)
	assert.Equal(t, standings.PointsPerWin, poolA.Rows[0].Points)
	assert.Equal(t, 3, poolA.Rows[0].RunDifferential)
	assert.Equal(t, "owls", poolA.Rows[1].TeamID)
	assert.Equal(t, 2, poolA.Rows[1].PoolRank)
	assert.Equal(t, 1, poolA.Rows[1].Losses)
}

func TestGetPoolStandings_TournamentNotFound(t *testing.T) {
	svc := NewStandingsService(twoPoolFixture())

	_, err := svc.GetPoolStandings(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

// TestGetPoolStandings_MalformedGame checks that a tied final anywhere in a
// pool fails the whole computation instead of producing a partial table.
func TestGetPoolStandings_MalformedGame(t *testing.T) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	gameRepo.games = append(gameRepo.games, completedGame("g3", "pool-a", "owls", "hawks", 4, 4))
	svc := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)

	_, err := svc.GetPoolStandings(context.Background(), "t1")
	assert.ErrorIs(t, err, standings.ErrScoreTied)
}

func TestGetPoolStandings_RepositoryFailure(t *testing.T) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	gameRepo.err = errors.New("connection reset")
	svc := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)

	_, err := svc.GetPoolStandings(context.Background(), "t1")
	assert.Error(t, err)
}

// TestGetPlayoffSeeds_StandardTop4 checks that pool winners seed ahead of
// runners-up, winners ordered by run differential.
func TestGetPlayoffSeeds_StandardTop4(t *testing.T) {
	svc := NewStandingsService(twoPoolFixture())

	seeds, err := svc.GetPlayoffSeeds(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, seeds, 4)

	order := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		order = append(order, seed.TeamID)
	}
	// Ravens won by 8, Hawks by 3; Owls allowed 5 runs, Eagles 9.
	assert.Equal(t, []string{"ravens", "hawks", "owls", "eagles"}, order)

	for i, seed := range seeds {
		require.NotNil(t, seed.OverallSeed)
		assert.Equal(t, i+1, *seed.OverallSeed)
	}
}

func TestGetPlayoffSeeds_NotConfigured(t *testing.T) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	tournamentRepo.tournament.PlayoffFormat = nil
	tournamentRepo.tournament.SeedingPattern = nil
	svc := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)

	_, err := svc.GetPlayoffSeeds(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrPlayoffNotConfigured)
}

// TestGetPoolStandings_RecomputedAfterCorrection checks read-side freshness:
// correcting a score flips the standings on the very next call.
func TestGetPoolStandings_RecomputedAfterCorrection(t *testing.T) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	svc := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)

	before, err := svc.GetPoolStandings(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "hawks", before[0].Rows[0].TeamID)

	gameRepo.games[0] = completedGame("g1", "pool-a", "hawks", "owls", 2, 5)

	after, err := svc.GetPoolStandings(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "owls", after[0].Rows[0].TeamID)
}
