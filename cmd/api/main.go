// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carterperez-dev/quotevault/internal/admin"
	"github.com/carterperez-dev/quotevault/internal/auth"
	"github.com/carterperez-dev/quotevault/internal/comment"
	"github.com/carterperez-dev/quotevault/internal/config"
	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/health"
	"github.com/carterperez-dev/quotevault/internal/middleware"
	"github.com/carterperez-dev/quotevault/internal/quote"
	"github.com/carterperez-dev/quotevault/internal/server"
	"github.com/carterperez-dev/quotevault/internal/user"
)

const (
	drainDelay = 5 * time.Second
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

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenService, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token service initialized",
		"algorithm", "HS256",
		"token_expire", cfg.JWT.TokenExpire.String(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(userSvc, tokenService)
	authHandler := auth.NewHandler(authSvc)

	quoteRepo := quote.NewRepository(db.DB)
	quoteSvc := quote.NewService(quoteRepo)
	quoteHandler := quote.NewHandler(quoteSvc)

	commentRepo := comment.NewRepository(db.DB)
	commentSvc := comment.NewService(commentRepo, quoteSvc)
	commentHandler := comment.NewHandler(commentSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		UserCount:  userSvc.Count,
		QuoteCount: quoteSvc.Count,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokenService)
	adminOnly := middleware.RequireAdmin

	// Mutating surfaces get a tighter per-user budget on top of the global
	// IP limit. The limiter runs after authentication so KeyByUser sees the
	// caller's identity.
	writeLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.WriteRequests,
				cfg.RateLimit.WriteBurst,
			),
			KeyFunc:  middleware.KeyByUser,
			FailOpen: true,
		},
	)
	authedWrite := func(next http.Handler) http.Handler {
		return authenticator(writeLimiter.Handler(next))
	}

	authHandler.RegisterRoutes(router, authenticator)
	quoteHandler.RegisterRoutes(router, authedWrite)
	commentHandler.RegisterRoutes(router, authedWrite)
	adminHandler.RegisterRoutes(router, authenticator, adminOnly)

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

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
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
