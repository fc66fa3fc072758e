package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	l, err := New(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	return l, mr
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newLimiter(t, 2)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.False(t, l.Allow(ctx, "10.0.0.1"))
	assert.True(t, l.Allow(ctx, "10.0.0.2"))
}

func TestLimiter_NewWindowResets(t *testing.T) {
	l, _ := newLimiter(t, 1)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return start }

	assert.True(t, l.Allow(ctx, "k"))
	assert.False(t, l.Allow(ctx, "k"))

	l.now = func() time.Time { return start.Add(time.Minute) }
	assert.True(t, l.Allow(ctx, "k"))
}

func TestLimiter_FailsClosed(t *testing.T) {
	l, mr := newLimiter(t, 5)
	mr.Close()

	assert.False(t, l.Allow(context.Background(), "k"))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(nil, "", 1, time.Second)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	_, err = New(client, "", 0, time.Second)
	assert.Error(t, err)
	_, err = New(client, "", 1, 0)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	l, _ := newLimiter(t, 1)
	h := Middleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token/", nil)
	req.RemoteAddr = "192.0.2.1:5555"

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"detail":"Request was throttled."}`, rr.Body.String())
}
