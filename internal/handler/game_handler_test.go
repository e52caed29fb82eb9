package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
)

type gameServiceMock struct {
	games      []models.Game
	game       *models.Game
	players    []models.Player
	err        error
	lastFilter models.GameFilter
}

func (m *gameServiceMock) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	m.lastFilter = filter
	return m.games, m.err
}

func (m *gameServiceMock) Get(ctx context.Context, id string) (*models.Game, error) {
	return m.game, m.err
}

func (m *gameServiceMock) Roster(ctx context.Context, teamID string) ([]models.Player, error) {
	return m.players, m.err
}

func TestGameHandlerListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &gameServiceMock{games: []models.Game{{ID: "game-1"}}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/teams/team-1/games?pending=true&from=2024-09-01", nil)
	c.Params = gin.Params{{Key: "teamId", Value: "team-1"}}

	NewGameHandler(mockSvc).List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.lastFilter.PendingOnly)
	assert.Equal(t, "team-1", mockSvc.lastFilter.TeamID)
	assert.Equal(t, 2024, mockSvc.lastFilter.From.Year())
	assert.True(t, mockSvc.lastFilter.To.IsZero())
}

func TestGameHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &gameServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "game not found")}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/games/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	NewGameHandler(mockSvc).Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
