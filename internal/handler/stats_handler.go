package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/club-officials-api/internal/dto"
	"github.com/noah-isme/club-officials-api/internal/middleware"
	"github.com/noah-isme/club-officials-api/internal/models"
	"github.com/noah-isme/club-officials-api/internal/service"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
	"github.com/noah-isme/club-officials-api/pkg/response"
)

type statsService interface {
	Leaderboard(ctx context.Context, filter models.StatsFilter) ([]models.PlayerStat, bool, error)
	Export(ctx context.Context, filter models.StatsFilter, format string) (*service.ExportFile, error)
}

// StatsHandler serves the confirmed shift leaderboard.
type StatsHandler struct {
	service statsService
}

// NewStatsHandler builds a new handler.
func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Leaderboard godoc
// @Summary Confirmed shifts per player
// @Description Most shifts first; ties ordered alphabetically.
// @Tags Stats
// @Produce json
// @Param teamId path string true "Team ID"
// @Param from query string false "First game date (YYYY-MM-DD)"
// @Param to query string false "Last game date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/stats [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	filter, _, err := statsFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	stats, hit, err := h.service.Leaderboard(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, stats, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Download the leaderboard
// @Tags Stats
// @Produce text/csv
// @Produce application/pdf
// @Param teamId path string true "Team ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /teams/{teamId}/stats/export [get]
func (h *StatsHandler) Export(c *gin.Context) {
	filter, format, err := statsFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}

func statsFilter(c *gin.Context) (models.StatsFilter, string, error) {
	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return models.StatsFilter{}, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters")
	}
	from, to, err := parseDateRange(query.From, query.To)
	if err != nil {
		return models.StatsFilter{}, "", err
	}
	return models.StatsFilter{TeamID: c.Param("teamId"), From: from, To: to}, query.Format, nil
}
