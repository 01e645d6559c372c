// AngelaMos | 2026
// handler_test.go

package comment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/middleware"
)

type staticVerifier struct {
	claims map[string]*middleware.Claims
}

func (v *staticVerifier) Verify(
	_ context.Context,
	token string,
) (*middleware.Claims, error) {
	if claims, ok := v.claims[token]; ok {
		return claims, nil
	}
	return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
}

func newCommentTestRouter() chi.Router {
	svc, _ := newCommentTestService()
	handler := NewHandler(svc)

	verifier := &staticVerifier{claims: map[string]*middleware.Claims{
		"token-1": {UserID: "author-1", Role: "user"},
	}}

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(verifier))
	return router
}

func TestCommentPostRequiresAuth(t *testing.T) {
	router := newCommentTestRouter()

	body, err := json.Marshal(CreateCommentRequest{
		Content: "nice one",
		QuoteID: "quote-1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodPost,
		"/comments/",
		bytes.NewReader(body),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(
		http.MethodPost,
		"/comments/",
		bytes.NewReader(body),
	)
	req.Header.Set("Authorization", "token-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "nice one", resp.Content)
	assert.Equal(t, "author-1", resp.User)
	assert.Equal(t, "quote-1", resp.Quote)
}

func TestCommentPostUnknownQuote(t *testing.T) {
	router := newCommentTestRouter()

	body, err := json.Marshal(CreateCommentRequest{
		Content: "hello?",
		QuoteID: "missing",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodPost,
		"/comments/",
		bytes.NewReader(body),
	)
	req.Header.Set("Authorization", "token-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "quote not found", resp.Error)
}

func TestCommentListIsPublic(t *testing.T) {
	router := newCommentTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/comments/quote-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty list serializes as [], not null.
	assert.Equal(t, "[]\n", rec.Body.String())
}
