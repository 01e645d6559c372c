// AngelaMos | 2026
// handler.go

package comment

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
	r.Route("/comments", func(r chi.Router) {
		r.Get("/{quoteID}", h.ListByQuote)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	comment, err := h.service.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "quote")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCommentResponse(comment))
}

func (h *Handler) ListByQuote(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByQuote(
		r.Context(),
		chi.URLParam(r, "quoteID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, comments)
}
