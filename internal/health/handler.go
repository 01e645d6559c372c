// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

type Checker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db       Checker
	redis    Checker
	shutdown atomic.Bool
}

func NewHandler(db, redis Checker) *Handler {
	return &Handler{
		db:    db,
		redis: redis,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	h.writeStatus(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Readiness probes both backing stores concurrently; either one failing
// marks the service degraded so load balancers route around it.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := h.runChecks(ctx)

	status := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	h.writeStatus(w, statusCode, ReadinessResponse{
		Status: status,
		Checks: checks,
	})
}

func (h *Handler) runChecks(ctx context.Context) []Check {
	var wg sync.WaitGroup
	checks := make([]Check, 2)

	wg.Add(2)

	go func() {
		defer wg.Done()
		checks[0] = runCheck(ctx, "database", h.db)
	}()

	go func() {
		defer wg.Done()
		checks[1] = runCheck(ctx, "redis", h.redis)
	}()

	wg.Wait()
	return checks
}

func runCheck(ctx context.Context, name string, checker Checker) Check {
	check := Check{
		Name:    name,
		Healthy: true,
	}

	if checker == nil {
		check.Healthy = false
		check.Message = name + " checker not configured"
		return check
	}

	start := time.Now()
	err := checker.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

type Check struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
