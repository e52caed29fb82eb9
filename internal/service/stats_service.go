package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/club-officials-api/internal/models"
	"github.com/noah-isme/club-officials-api/internal/officials"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
	"github.com/noah-isme/club-officials-api/pkg/export"
	"github.com/noah-isme/club-officials-api/pkg/jobs"
)

const (
	// JobTypeStatsWarmup rebuilds a team's all-time leaderboard after a change.
	JobTypeStatsWarmup = "stats.warmup"

	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"

	statsDateLayout = "2006-01-02"
)

var leaderboardHeaders = []string{"Rank", "Player", "Shifts"}

type teamFinder interface {
	FindByID(ctx context.Context, id string) (*models.Team, error)
}

type teamGameLister interface {
	ListByTeam(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Invalidate(ctx context.Context, pattern string)
	Generation(ctx context.Context, key string) (int64, bool)
	Bump(ctx context.Context, key string)
}

type jobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// ExportFile is a rendered leaderboard download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// StatsServiceConfig tunes leaderboard caching and exports.
type StatsServiceConfig struct {
	CacheTTL    time.Duration
	ExportTitle string
}

// StatsService aggregates confirmed shifts into per-team leaderboards.
type StatsService struct {
	teams  teamFinder
	games  teamGameLister
	cache  statsCache
	queue  jobEnqueuer
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	cfg    StatsServiceConfig
}

// StatsServiceParams groups constructor dependencies.
type StatsServiceParams struct {
	Teams  teamFinder
	Games  teamGameLister
	Cache  statsCache
	Logger *zap.Logger
	Config StatsServiceConfig
}

// NewStatsService constructs a StatsService.
func NewStatsService(params StatsServiceParams) *StatsService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.ExportTitle == "" {
		cfg.ExportTitle = "Toimitsijavuorot"
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		teams:  params.Teams,
		games:  params.Games,
		cache:  params.Cache,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(20, 0, 30),
		logger: logger,
		cfg:    cfg,
	}
}

// AttachQueue wires the warm-up queue. Without one, invalidation only drops cache entries.
func (s *StatsService) AttachQueue(queue jobEnqueuer) {
	s.queue = queue
}

// Leaderboard returns the ranked shift counts of a team and whether the cache served them.
func (s *StatsService) Leaderboard(ctx context.Context, filter models.StatsFilter) ([]models.PlayerStat, bool, error) {
	if strings.TrimSpace(filter.TeamID) == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "teamId is required")
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "to must not be before from")
	}
	if err := s.ensureTeam(ctx, filter.TeamID); err != nil {
		return nil, false, err
	}

	// the key is fixed before the snapshot read, so a write that lands mid-compute
	// bumps the generation and leaves this entry unreachable
	key, cacheable := s.cacheKey(ctx, filter)
	if cacheable {
		var cached []models.PlayerStat
		if s.cache.Get(ctx, key, &cached) {
			if cached == nil {
				cached = []models.PlayerStat{}
			}
			return cached, true, nil
		}
	}

	stats, err := s.compute(ctx, filter)
	if err != nil {
		return nil, false, err
	}
	if cacheable {
		s.cache.Set(ctx, key, stats, s.cfg.CacheTTL)
	}
	return stats, false, nil
}

// Export renders the leaderboard as CSV or PDF.
func (s *StatsService) Export(ctx context.Context, filter models.StatsFilter, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	stats, _, err := s.Leaderboard(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: leaderboardHeaders}
	for i, stat := range stats {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Rank":   strconv.Itoa(i + 1),
			"Player": stat.Name,
			"Shifts": strconv.Itoa(stat.Count),
		})
	}

	file := &ExportFile{Filename: fmt.Sprintf("toimitsijat-%s.%s", filter.TeamID, format)}
	switch format {
	case ExportFormatPDF:
		file.ContentType = "application/pdf"
		file.Body, err = s.pdf.Render(dataset, s.cfg.ExportTitle)
	default:
		file.ContentType = "text/csv; charset=utf-8"
		file.Body, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return file, nil
}

// Invalidate drops every cached leaderboard of the team and schedules a rebuild.
func (s *StatsService) Invalidate(ctx context.Context, teamID string) {
	if s.cache != nil {
		s.cache.Bump(ctx, statsGenerationKey(teamID))
		s.cache.Invalidate(ctx, fmt.Sprintf("stats:team:%s:*", teamID))
	}
	if s.queue == nil {
		return
	}
	job := jobs.Job{ID: teamID + ":" + strconv.FormatInt(time.Now().UnixNano(), 10), Key: teamID, Type: JobTypeStatsWarmup, Payload: teamID}
	if err := s.queue.Enqueue(job); err != nil {
		s.logger.Warn("failed to enqueue stats warm-up", zap.String("team_id", teamID), zap.Error(err))
	}
}

// HandleWarmup is the queue handler that refills the all-time leaderboard cache.
func (s *StatsService) HandleWarmup(ctx context.Context, job jobs.Job) error {
	teamID, ok := job.Payload.(string)
	if !ok || teamID == "" {
		return fmt.Errorf("stats warm-up: unexpected payload %T", job.Payload)
	}
	filter := models.StatsFilter{TeamID: teamID}
	key, cacheable := s.cacheKey(ctx, filter)
	stats, err := s.compute(ctx, filter)
	if err != nil {
		return err
	}
	if cacheable {
		s.cache.Set(ctx, key, stats, s.cfg.CacheTTL)
	}
	s.logger.Debug("stats warmed", zap.String("team_id", teamID), zap.Int("players", len(stats)))
	return nil
}

func (s *StatsService) compute(ctx context.Context, filter models.StatsFilter) ([]models.PlayerStat, error) {
	games, err := s.games.ListByTeam(ctx, models.GameFilter{TeamID: filter.TeamID, From: filter.From, To: filter.To})
	if err != nil {
		return nil, appErrors.Storage(err, "failed to load games")
	}
	return officials.Leaderboard(games), nil
}

func (s *StatsService) ensureTeam(ctx context.Context, teamID string) error {
	if _, err := s.teams.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return appErrors.Storage(err, "failed to load team")
	}
	return nil
}

func (s *StatsService) cacheKey(ctx context.Context, filter models.StatsFilter) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, ok := s.cache.Generation(ctx, statsGenerationKey(filter.TeamID))
	if !ok {
		return "", false
	}
	return statsCacheKey(filter, gen), true
}

func statsCacheKey(filter models.StatsFilter, gen int64) string {
	return fmt.Sprintf("stats:team:%s:%d:%s:%s", filter.TeamID, gen, formatBound(filter.From), formatBound(filter.To))
}

func statsGenerationKey(teamID string) string {
	return "stats:gen:" + teamID
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(statsDateLayout)
}
