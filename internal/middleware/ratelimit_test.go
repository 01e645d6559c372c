// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyByIP(t *testing.T) {
	t.Run("remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:51234"
		assert.Equal(t, "ratelimit:ip:203.0.113.9", KeyByIP(req))
	})

	t.Run("x-forwarded-for takes the last hop", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.9")
		assert.Equal(t, "ratelimit:ip:203.0.113.9", KeyByIP(req))
	})

	t.Run("x-real-ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		assert.Equal(t, "ratelimit:ip:203.0.113.9", KeyByIP(req))
	})
}

func TestKeyByUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:51234"

	t.Run("anonymous falls back to IP", func(t *testing.T) {
		assert.Equal(t, "ratelimit:ip:203.0.113.9", KeyByUser(req))
	})

	t.Run("authenticated buckets by identity", func(t *testing.T) {
		ctx := context.WithValue(req.Context(), UserIDKey, "user-42")
		authed := req.WithContext(ctx)
		assert.Equal(t, "ratelimit:user:user-42", KeyByUser(authed))
	})
}

// The in-process fallback enforces the configured burst when Redis is out
// of the picture.
func TestLocalLimiterFallback(t *testing.T) {
	limiter := newLocalLimiter()
	limit := PerMinute(60, 3)

	allowedCount := 0
	for i := 0; i < 10; i++ {
		res, err := limiter.allow("key-1", limit)
		require.NoError(t, err)
		if res.Allowed > 0 {
			allowedCount++
		}
	}

	assert.Equal(t, 3, allowedCount, "burst bounds immediate requests")

	// A different key has its own bucket.
	res, err := limiter.allow("key-2", limit)
	require.NoError(t, err)
	assert.Positive(t, res.Allowed)
}

func TestPerMinute(t *testing.T) {
	limit := PerMinute(100, 20)
	assert.Equal(t, 100, limit.Rate)
	assert.Equal(t, 20, limit.Burst)
	assert.Equal(t, time.Minute, limit.Period)
}
