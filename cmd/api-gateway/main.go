package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/club-officials-api/api/swagger"
	"github.com/noah-isme/club-officials-api/internal/handler"
	"github.com/noah-isme/club-officials-api/internal/middleware"
	"github.com/noah-isme/club-officials-api/internal/repository"
	"github.com/noah-isme/club-officials-api/internal/service"
	"github.com/noah-isme/club-officials-api/pkg/cache"
	"github.com/noah-isme/club-officials-api/pkg/config"
	"github.com/noah-isme/club-officials-api/pkg/database"
	"github.com/noah-isme/club-officials-api/pkg/jobs"
	"github.com/noah-isme/club-officials-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/club-officials-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/club-officials-api/pkg/middleware/requestid"
)

// @title Club Officials API
// @version 1.0.0
// @description Scorekeeper and clock duty scheduling for club games
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, logr); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	var cacheRepo service.CacheRepository
	if cfg.Stats.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, leaderboard cache disabled", zap.Error(err))
		} else {
			redisRepo := repository.NewCacheRepository(client, logr)
			defer redisRepo.Close() //nolint:errcheck
			cacheRepo = redisRepo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Stats.CacheTTL, logr, cacheRepo != nil)

	gameRepo := repository.NewGameRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "club-officials-api",
	})
	accessSvc := service.NewTeamAccessService(teamRepo)
	gameSvc := service.NewGameService(gameRepo, teamRepo, logr)
	statsSvc := service.NewStatsService(service.StatsServiceParams{
		Teams:  teamRepo,
		Games:  gameRepo,
		Cache:  cacheSvc,
		Logger: logr,
		Config: service.StatsServiceConfig{CacheTTL: cfg.Stats.CacheTTL, ExportTitle: cfg.Export.Title},
	})
	officialsSvc := service.NewOfficialsService(service.OfficialsServiceParams{
		Games:     gameRepo,
		Access:    accessSvc,
		Audit:     userRepo,
		Stats:     statsSvc,
		Metrics:   metricsSvc,
		Validator: validate,
		Logger:    logr,
	})

	if cacheSvc.Enabled() {
		warmup := jobs.NewQueue("stats-warmup", statsSvc.HandleWarmup, jobs.QueueConfig{
			Workers:    cfg.Stats.WarmupWorkers,
			MaxRetries: cfg.Stats.WarmupRetries,
			RetryDelay: 2 * time.Second,
			Logger:     logr,
		})
		warmup.Start(ctx)
		defer warmup.Stop()
		statsSvc.AttachQueue(warmup)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc.Handler(), db)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(authSvc)
	gameHandler := handler.NewGameHandler(gameSvc)
	officialsHandler := handler.NewOfficialsHandler(officialsSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.ResponseMeta())
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(authSvc))
	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/teams/:teamId/players", gameHandler.Players)
	secured.GET("/teams/:teamId/games", gameHandler.List)
	secured.GET("/teams/:teamId/stats", statsHandler.Leaderboard)
	secured.GET("/teams/:teamId/stats/export", statsHandler.Export)
	secured.GET("/games/:id", gameHandler.Get)

	// team-level write access is decided by OfficialsService against the stored game
	officials := secured.Group("/games/:id/officials")
	officials.PUT("/:slot", officialsHandler.Set)
	officials.DELETE("/:slot", officialsHandler.Unassign)
	officials.POST("/:slot/transitions", officialsHandler.Transition)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
