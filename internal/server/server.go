// AngelaMos | 2026
// server.go

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/quotevault/internal/config"
	"github.com/carterperez-dev/quotevault/internal/health"
)

type Config struct {
	ServerConfig  config.ServerConfig
	HealthHandler *health.Handler
	Logger        *slog.Logger
}

// Server owns the HTTP listener lifecycle. Shutdown flips the readiness
// probe first and drains before closing, so load balancers stop routing
// new traffic ahead of connection teardown.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	health     *health.Handler
	logger     *slog.Logger
}

func New(cfg Config) *Server {
	router := chi.NewRouter()

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.ServerConfig.Address(),
			Handler:      router,
			ReadTimeout:  cfg.ServerConfig.ReadTimeout,
			WriteTimeout: cfg.ServerConfig.WriteTimeout,
			IdleTimeout:  cfg.ServerConfig.IdleTimeout,
		},
		router: router,
		health: cfg.HealthHandler,
		logger: cfg.Logger,
	}
}

func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context, drainDelay time.Duration) error {
	if s.health != nil {
		s.health.SetShutdown(true)
	}

	s.logger.Info("draining before shutdown", "delay", drainDelay.String())

	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
