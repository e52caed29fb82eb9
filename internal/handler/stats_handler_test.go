package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/middleware"
	"github.com/noah-isme/club-officials-api/internal/models"
	"github.com/noah-isme/club-officials-api/internal/service"
)

type statsServiceMock struct {
	stats      []models.PlayerStat
	hit        bool
	file       *service.ExportFile
	err        error
	lastFilter models.StatsFilter
	lastFormat string
	calls      int
}

func (m *statsServiceMock) Leaderboard(ctx context.Context, filter models.StatsFilter) ([]models.PlayerStat, bool, error) {
	m.calls++
	m.lastFilter = filter
	return m.stats, m.hit, m.err
}

func (m *statsServiceMock) Export(ctx context.Context, filter models.StatsFilter, format string) (*service.ExportFile, error) {
	m.calls++
	m.lastFilter = filter
	m.lastFormat = format
	return m.file, m.err
}

func statsContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "teamId", Value: "team-1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "member", Role: models.RoleMember})
	return c, w
}

func TestStatsHandlerLeaderboard(t *testing.T) {
	mockSvc := &statsServiceMock{stats: []models.PlayerStat{{Name: "Matti", Count: 3}}, hit: true}
	c, w := statsContext("/teams/team-1/stats?from=2024-01-01&to=2024-06-30")

	NewStatsHandler(mockSvc).Leaderboard(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "team-1", mockSvc.lastFilter.TeamID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), mockSvc.lastFilter.From)

	var body struct {
		Data []models.PlayerStat    `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, mockSvc.stats, body.Data)
	assert.Equal(t, true, body.Meta["cache_hit"])
}

func TestStatsHandlerRejectsBadDate(t *testing.T) {
	mockSvc := &statsServiceMock{}
	c, w := statsContext("/teams/team-1/stats?from=1.1.2024")

	NewStatsHandler(mockSvc).Leaderboard(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mockSvc.calls)
}

func TestStatsHandlerExport(t *testing.T) {
	mockSvc := &statsServiceMock{file: &service.ExportFile{Filename: "toimitsijat-team-1.csv", ContentType: "text/csv; charset=utf-8", Body: []byte("Rank;Player;Shifts\n")}}
	c, w := statsContext("/teams/team-1/stats/export?format=csv")

	NewStatsHandler(mockSvc).Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormat)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "toimitsijat-team-1.csv")
	assert.Equal(t, "Rank;Player;Shifts\n", w.Body.String())
}
