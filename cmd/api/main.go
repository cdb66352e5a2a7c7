// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelamos/memorial/internal/action"
	"github.com/angelamos/memorial/internal/admin"
	"github.com/angelamos/memorial/internal/auth"
	"github.com/angelamos/memorial/internal/config"
	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/health"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/middleware"
	"github.com/angelamos/memorial/internal/server"
	"github.com/angelamos/memorial/internal/user"
)

const (
	drainDelay = 5 * time.Second

	actionRequestsPerHour = 60
	actionBurst           = 10
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	core.SetPasswordCost(cfg.Auth.BcryptCost)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := core.Migrate(ctx, db.DB.DB, logger); err != nil {
			return err
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	if !cfg.IsProduction() {
		created, err := auth.EnsureKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
		if err != nil {
			return err
		}
		if created {
			logger.Warn("generated a development signing key",
				"path", cfg.JWT.PrivateKeyPath,
			)
		}
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	txManager := core.NewTxManager(db.DB)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(
		authRepo,
		jwtManager,
		userSvc,
		redis.Client,
		cfg.Auth,
		logger.With("service", "auth"),
	)
	authHandler := auth.NewHandler(authSvc)

	martyrRepo := martyr.NewRepository(db.DB)
	martyrSvc := martyr.NewService(
		martyrRepo,
		userSvc,
		redis,
		cfg.Cache.MartyrTTL,
		logger.With("service", "martyr"),
	)
	martyrHandler := martyr.NewHandler(martyrSvc)

	contributionSvc := contribution.NewService(
		contribution.NewRepository(db.DB),
		userSvc,
		martyrRepo,
		txManager,
		martyrSvc,
		cfg.App.SystemEmail,
		logger.With("service", "contribution"),
	)
	contributionHandler := contribution.NewHandler(contributionSvc)

	actionSvc := action.NewService(
		martyrSvc,
		contributionSvc,
		authSvc,
		logger.With("service", "action"),
	)
	actionHandler := action.NewHandler(actionSvc)

	healthHandler := health.NewHandler(db, redis, martyrSvc, logger)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Archive:    martyrSvc,
		Queue:      contributionSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics)
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(authSvc)
	optionalAuth := middleware.OptionalAuth(authSvc)

	router.Route("/v1", func(r chi.Router) {
		r.Use(optionalAuth)
		r.Use(middleware.RoleRateLimiter(redis.Client, middleware.DefaultRoleLimits))

		authHandler.RegisterRoutes(r, authenticator)

		r.Post("/users", authHandler.Register)

		userHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator)
		martyrHandler.RegisterRoutes(r, authenticator)
		contributionHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator)
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(
			middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
				Limit:    middleware.PerHour(actionRequestsPerHour, actionBurst),
				KeyFunc:  middleware.KeyByUserAndEndpoint,
				FailOpen: true,
			}).Handler,
		)
		actionHandler.RegisterRoutes(r, optionalAuth)
	})

	healthHandler.SetReady(true)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
