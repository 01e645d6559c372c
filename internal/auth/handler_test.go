// AngelaMos | 2026
// handler_test.go

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/middleware"
)

func newAuthTestRouter(t *testing.T) chi.Router {
	t.Helper()

	svc, _, tokens := newTestService(t)
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(tokens))
	return router
}

func postJSON(
	t *testing.T,
	router chi.Router,
	path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router := newAuthTestRouter(t)

	body := RegisterRequest{Username: "marcus", Password: "meditations4ever"}

	rec := postJSON(t, router, "/auth/register", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp core.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "registration successful", resp.Message)

	t.Run("duplicate username is a 400", func(t *testing.T) {
		rec := postJSON(t, router, "/auth/register", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "username already exists", resp.Error)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/auth/register", RegisterRequest{
			Username: "seneca",
			Password: "short",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "password")
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthTestRouter(t)

	register := RegisterRequest{Username: "marcus", Password: "meditations4ever"}
	rec := postJSON(t, router, "/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("success returns a bare token field", func(t *testing.T) {
		rec := postJSON(t, router, "/auth/login", LoginRequest{
			Username: "marcus",
			Password: "meditations4ever",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("bad credentials are a 400", func(t *testing.T) {
		rec := postJSON(t, router, "/auth/login", LoginRequest{
			Username: "marcus",
			Password: "wrong-password",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid credentials", resp.Error)
	})
}

// Full session flow: register, log in, then read the identity back using
// the raw token in the Authorization header.
func TestMeEndpoint(t *testing.T) {
	router := newAuthTestRouter(t)

	register := RegisterRequest{Username: "marcus", Password: "meditations4ever"}
	rec := postJSON(t, router, "/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, router, "/auth/login", LoginRequest{
		Username: register.Username,
		Password: register.Password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", login.Token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var me MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, "marcus", me.Username)
		assert.Equal(t, "user", me.Role)
		assert.NotEmpty(t, me.ID)
	})

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with mangled token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", login.Token+"x")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
