package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/club-officials-api/internal/dto"
	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
	"github.com/noah-isme/club-officials-api/pkg/response"
)

type gameService interface {
	List(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	Get(ctx context.Context, id string) (*models.Game, error)
	Roster(ctx context.Context, teamID string) ([]models.Player, error)
}

// GameHandler serves schedules and rosters.
type GameHandler struct {
	service gameService
}

// NewGameHandler builds a new handler.
func NewGameHandler(service gameService) *GameHandler {
	return &GameHandler{service: service}
}

// List godoc
// @Summary List team games
// @Tags Games
// @Produce json
// @Param teamId path string true "Team ID"
// @Param from query string false "First game date (YYYY-MM-DD)"
// @Param to query string false "Last game date (YYYY-MM-DD)"
// @Param pending query bool false "Only games with an unconfirmed slot"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/games [get]
func (h *GameHandler) List(c *gin.Context) {
	var query dto.GameQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}
	from, to, err := parseDateRange(query.From, query.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	games, err := h.service.List(c.Request.Context(), models.GameFilter{
		TeamID:      c.Param("teamId"),
		From:        from,
		To:          to,
		PendingOnly: query.Pending,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, games, map[string]interface{}{"count": len(games)})
}

// Get godoc
// @Summary Get a game with its officials
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	game, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, game)
}

// Players godoc
// @Summary List the team roster
// @Tags Games
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/players [get]
func (h *GameHandler) Players(c *gin.Context) {
	players, err := h.service.Roster(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, players)
}
