package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

type gameReader interface {
	FindByID(ctx context.Context, id string) (*models.Game, error)
	ListByTeam(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
}

type rosterReader interface {
	FindByID(ctx context.Context, id string) (*models.Team, error)
	ListPlayers(ctx context.Context, teamID string) ([]models.Player, error)
}

// GameService serves read access to schedules and rosters.
type GameService struct {
	games  gameReader
	teams  rosterReader
	logger *zap.Logger
}

// NewGameService constructs a GameService.
func NewGameService(games gameReader, teams rosterReader, logger *zap.Logger) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameService{games: games, teams: teams, logger: logger}
}

// List returns a team's games in schedule order, optionally only those with an unconfirmed slot.
func (s *GameService) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	if strings.TrimSpace(filter.TeamID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teamId is required")
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "to must not be before from")
	}
	if err := s.ensureTeam(ctx, filter.TeamID); err != nil {
		return nil, err
	}
	games, err := s.games.ListByTeam(ctx, filter)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list games")
	}
	return games, nil
}

// Get returns a single game.
func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "game not found")
		}
		return nil, appErrors.Storage(err, "failed to load game")
	}
	return game, nil
}

// Roster returns the team's players, which feed the assignment picker.
func (s *GameService) Roster(ctx context.Context, teamID string) ([]models.Player, error) {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}
	players, err := s.teams.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list players")
	}
	return players, nil
}

func (s *GameService) ensureTeam(ctx context.Context, teamID string) error {
	if _, err := s.teams.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return appErrors.Storage(err, "failed to load team")
	}
	return nil
}
