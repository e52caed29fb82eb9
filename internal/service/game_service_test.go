package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

type gameReaderStub struct {
	games      []models.Game
	game       *models.Game
	findErr    error
	listErr    error
	lastFilter models.GameFilter
}

func (s *gameReaderStub) FindByID(ctx context.Context, id string) (*models.Game, error) {
	return s.game, s.findErr
}

func (s *gameReaderStub) ListByTeam(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	s.lastFilter = filter
	return s.games, s.listErr
}

type rosterReaderStub struct {
	teamErr error
	players []models.Player
}

func (s rosterReaderStub) FindByID(ctx context.Context, id string) (*models.Team, error) {
	if s.teamErr != nil {
		return nil, s.teamErr
	}
	return &models.Team{ID: id}, nil
}

func (s rosterReaderStub) ListPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	return s.players, nil
}

func TestGameServiceList(t *testing.T) {
	games := &gameReaderStub{games: []models.Game{{ID: "g1"}}}
	svc := NewGameService(games, rosterReaderStub{}, nil)

	out, err := svc.List(context.Background(), models.GameFilter{TeamID: "team-1", PendingOnly: true})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.True(t, games.lastFilter.PendingOnly)
}

func TestGameServiceListValidation(t *testing.T) {
	svc := NewGameService(&gameReaderStub{}, rosterReaderStub{}, nil)

	_, err := svc.List(context.Background(), models.GameFilter{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.List(context.Background(), models.GameFilter{
		TeamID: "team-1",
		From:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGameServiceListUnknownTeam(t *testing.T) {
	svc := NewGameService(&gameReaderStub{}, rosterReaderStub{teamErr: sql.ErrNoRows}, nil)

	_, err := svc.List(context.Background(), models.GameFilter{TeamID: "ghost"})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGameServiceGet(t *testing.T) {
	svc := NewGameService(&gameReaderStub{findErr: sql.ErrNoRows}, rosterReaderStub{}, nil)
	_, err := svc.Get(context.Background(), "missing")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	svc = NewGameService(&gameReaderStub{findErr: errors.New("timeout")}, rosterReaderStub{}, nil)
	_, err = svc.Get(context.Background(), "g1")
	assert.Equal(t, appErrors.ErrStorage.Code, appErrors.FromError(err).Code)
}

func TestGameServiceRoster(t *testing.T) {
	svc := NewGameService(&gameReaderStub{}, rosterReaderStub{players: []models.Player{{Name: "Matti"}, {Name: "Liisa"}}}, nil)

	players, err := svc.Roster(context.Background(), "team-1")
	require.NoError(t, err)
	assert.Len(t, players, 2)
}
