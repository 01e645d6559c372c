// AngelaMos | 2026
// handler.go

package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the quote surface. Listing and single reads are
// public; every mutation goes through the authenticator first.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{quoteID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/", h.Create)
			r.Put("/{quoteID}", h.Update)
			r.Delete("/{quoteID}", h.Delete)
			r.Post("/{quoteID}/like", h.Like)
			r.Post("/{quoteID}/dislike", h.Dislike)
			r.Put("/{quoteID}/verify", h.Verify)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := ListParams{
		Page:         parseIntQuery(r, "page", DefaultPage),
		Limit:        parseIntQuery(r, "limit", DefaultLimit),
		Search:       query.Get("search"),
		SortBy:       query.Get("sortBy"),
		VerifiedOnly: query.Get("verified") == "true",
	}
	params.Normalize()

	quotes, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ListResponse{
		Quotes:      ToQuoteResponseList(quotes),
		TotalPages:  TotalPages(total, params.Limit),
		TotalQuotes: total,
		CurrentPage: params.Page,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.service.Get(r.Context(), chi.URLParam(r, "quoteID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToQuoteResponse(quote))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	quote, err := h.service.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToQuoteResponse(quote))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	quote, err := h.service.Update(
		r.Context(),
		actorFrom(r),
		chi.URLParam(r, "quoteID"),
		req,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToQuoteResponse(quote))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(
		r.Context(),
		actorFrom(r),
		chi.URLParam(r, "quoteID"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Message(w, "quote deleted")
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggleVote(w, r, VoteLike)
}

func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.toggleVote(w, r, VoteDislike)
}

func (h *Handler) toggleVote(
	w http.ResponseWriter,
	r *http.Request,
	kind VoteKind,
) {
	quote, err := h.service.ToggleVote(
		r.Context(),
		actorFrom(r),
		chi.URLParam(r, "quoteID"),
		kind,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToQuoteResponse(quote))
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	quote, err := h.service.ToggleVerified(
		r.Context(),
		actorFrom(r),
		chi.URLParam(r, "quoteID"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToQuoteResponse(quote))
}

// writeError maps service errors onto the wire contract. Ownership denials
// intentionally map to 401 (not 403) to match the original behavior; only
// the admin verify gate answers 403.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "quote")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "not authorized")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "admin access required")
	default:
		core.InternalServerError(w, err)
	}
}

func actorFrom(r *http.Request) Actor {
	return Actor{
		UserID: middleware.GetUserID(r.Context()),
		Role:   middleware.GetUserRole(r.Context()),
	}
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
