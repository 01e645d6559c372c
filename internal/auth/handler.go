// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameExists) {
			core.BadRequest(w, "username already exists")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Message(w, "registration successful")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// 400, not 401: the original API treats bad credentials as a
			// request error and reserves 401 for missing/invalid tokens.
			core.BadRequest(w, "invalid credentials")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TokenResponse{Token: token})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	info, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		if errors.Is(err, core.ErrUnauthorized) {
			core.Unauthorized(w, "")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MeResponse{
		ID:        info.ID,
		Username:  info.Username,
		Role:      info.Role,
		CreatedAt: info.CreatedAt,
	})
}
