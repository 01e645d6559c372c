// AngelaMos | 2026
// handler_test.go

package quote

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

// stubVerifier resolves tokens from a fixed table, standing in for the JWT
// service in handler tests.
type stubVerifier struct {
	tokens map[string]*middleware.Claims
}

func (s *stubVerifier) Verify(
	_ context.Context,
	token string,
) (*middleware.Claims, error) {
	if claims, ok := s.tokens[token]; ok {
		return claims, nil
	}
	return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
}

type quoteTestServer struct {
	router chi.Router
	svc    *Service
}

func newQuoteTestServer(t *testing.T) *quoteTestServer {
	t.Helper()

	svc := NewService(newFakeRepo())
	handler := NewHandler(svc)

	verifier := &stubVerifier{tokens: map[string]*middleware.Claims{
		"token-owner": {UserID: "owner", Role: "user"},
		"token-other": {UserID: "other", Role: "user"},
		"token-admin": {UserID: "admin", Role: "admin"},
	}}

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(verifier))

	return &quoteTestServer{router: router, svc: svc}
}

func (ts *quoteTestServer) do(
	t *testing.T,
	method, path, token string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *quoteTestServer) seed(t *testing.T, ownerID, content string) *Quote {
	t.Helper()

	quote, err := ts.svc.Create(
		context.Background(),
		Actor{UserID: ownerID, Role: "user"},
		CreateQuoteRequest{Content: content, Author: "Author"},
	)
	require.NoError(t, err)
	return quote
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestQuoteCreateRequiresAuth(t *testing.T) {
	ts := newQuoteTestServer(t)

	body := CreateQuoteRequest{Content: "hello", Author: "Someone"}

	rec := ts.do(t, http.MethodPost, "/quotes/", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/quotes/", "token-owner", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[QuoteResponse](t, rec)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, "owner", resp.User)
	assert.NotNil(t, resp.Likes)
	assert.NotNil(t, resp.Dislikes)
}

func TestQuoteCreateValidation(t *testing.T) {
	ts := newQuoteTestServer(t)

	rec := ts.do(t, http.MethodPost, "/quotes/", "token-owner",
		map[string]string{"content": "no author given"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeJSON[core.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "author")
}

func TestQuoteListEnvelope(t *testing.T) {
	ts := newQuoteTestServer(t)

	for i := 1; i <= 10; i++ {
		ts.seed(t, "owner", fmt.Sprintf("quote %d", i))
	}

	t.Run("default limit is seven", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/quotes/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[ListResponse](t, rec)
		assert.Len(t, resp.Quotes, 7)
		assert.Equal(t, 2, resp.TotalPages)
		assert.Equal(t, 10, resp.TotalQuotes)
		assert.Equal(t, 1, resp.CurrentPage)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/quotes/?page=2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[ListResponse](t, rec)
		assert.Len(t, resp.Quotes, 3)
		assert.Equal(t, 2, resp.CurrentPage)
	})

	t.Run("search narrows the total", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/quotes/?search=quote+10", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[ListResponse](t, rec)
		require.Len(t, resp.Quotes, 1)
		assert.Equal(t, "quote 10", resp.Quotes[0].Content)
		assert.Equal(t, 1, resp.TotalQuotes)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("garbage paging falls back to defaults", func(t *testing.T) {
		rec := ts.do(
			t,
			http.MethodGet,
			"/quotes/?page=banana&limit=-3",
			"",
			nil,
		)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[ListResponse](t, rec)
		assert.Len(t, resp.Quotes, 7)
		assert.Equal(t, 1, resp.CurrentPage)
	})
}

func TestQuoteListVerifiedFilter(t *testing.T) {
	ts := newQuoteTestServer(t)

	ts.seed(t, "owner", "plain quote")
	verified := ts.seed(t, "owner", "verified quote")

	rec := ts.do(
		t,
		http.MethodPut,
		"/quotes/"+verified.ID+"/verify",
		"token-admin",
		nil,
	)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/quotes/?verified=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[ListResponse](t, rec)
	require.Len(t, resp.Quotes, 1)
	assert.Equal(t, "verified quote", resp.Quotes[0].Content)
	assert.True(t, resp.Quotes[0].IsVerified)
}

func TestQuoteGet(t *testing.T) {
	ts := newQuoteTestServer(t)
	quote := ts.seed(t, "owner", "readable")

	rec := ts.do(t, http.MethodGet, "/quotes/"+quote.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[QuoteResponse](t, rec)
	assert.Equal(t, quote.ID, resp.ID)

	rec = ts.do(t, http.MethodGet, "/quotes/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	errResp := decodeJSON[core.ErrorResponse](t, rec)
	assert.Equal(t, "quote not found", errResp.Error)
}

func TestQuoteUpdateStatusMapping(t *testing.T) {
	ts := newQuoteTestServer(t)
	quote := ts.seed(t, "owner", "before")

	body := UpdateQuoteRequest{Content: "after", Author: "Author"}

	t.Run("non-owner gets 401", func(t *testing.T) {
		rec := ts.do(
			t,
			http.MethodPut,
			"/quotes/"+quote.ID,
			"token-other",
			body,
		)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		resp := decodeJSON[core.ErrorResponse](t, rec)
		assert.Equal(t, "not authorized", resp.Error)
	})

	t.Run("owner succeeds", func(t *testing.T) {
		rec := ts.do(
			t,
			http.MethodPut,
			"/quotes/"+quote.ID,
			"token-owner",
			body,
		)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[QuoteResponse](t, rec)
		assert.Equal(t, "after", resp.Content)
	})
}

func TestQuoteDelete(t *testing.T) {
	ts := newQuoteTestServer(t)
	quote := ts.seed(t, "owner", "doomed")

	rec := ts.do(t, http.MethodDelete, "/quotes/"+quote.ID, "token-other", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/quotes/"+quote.ID, "token-owner", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/quotes/"+quote.ID, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteVoteEndpoints(t *testing.T) {
	ts := newQuoteTestServer(t)
	quote := ts.seed(t, "owner", "voted on")

	likePath := "/quotes/" + quote.ID + "/like"
	dislikePath := "/quotes/" + quote.ID + "/dislike"

	rec := ts.do(t, http.MethodPost, likePath, "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, likePath, "token-other", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[QuoteResponse](t, rec)
	assert.Equal(t, []string{"other"}, resp.Likes)

	rec = ts.do(t, http.MethodPost, dislikePath, "token-other", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeJSON[QuoteResponse](t, rec)
	assert.Empty(t, resp.Likes)
	assert.Equal(t, []string{"other"}, resp.Dislikes)

	rec = ts.do(t, http.MethodPost, "/quotes/missing/like", "token-other", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteVerifyStatusMapping(t *testing.T) {
	ts := newQuoteTestServer(t)
	quote := ts.seed(t, "owner", "pending review")

	path := "/quotes/" + quote.ID + "/verify"

	t.Run("non-admin gets 403", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, path, "token-owner", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)

		resp := decodeJSON[core.ErrorResponse](t, rec)
		assert.Equal(t, "admin access required", resp.Error)
	})

	t.Run("admin toggles", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, path, "token-admin", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[QuoteResponse](t, rec)
		assert.True(t, resp.IsVerified)

		rec = ts.do(t, http.MethodPut, path, "token-admin", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp = decodeJSON[QuoteResponse](t, rec)
		assert.False(t, resp.IsVerified)
	})
}
