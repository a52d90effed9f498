package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type echoHandler struct{}

func (echoHandler) Init(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		caller, _ := middleware.CallerFromContext(r.Context())
		w.Write([]byte(caller.ID.String()))
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

func testConfig() config.Config {
	return config.Config{
		HTTP: config.HTTP{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplication_Routes(t *testing.T) {
	var dbErr error
	a := New(discard(), testConfig(), pingerFunc(func(context.Context) error { return dbErr }))
	a.SetHTTPHandlers(echoHandler{})

	t.Run("health ok", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("health without db", func(t *testing.T) {
		dbErr = errors.New("down")
		defer func() { dbErr = nil }()

		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("api requires identity", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("api with identity", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
		req.Header.Set(middleware.HeaderUserID, id.String())
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, id.String(), rr.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestApplication_StartStop(t *testing.T) {
	a := New(discard(), testConfig(), pingerFunc(func(context.Context) error { return nil }))

	started := false
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		started = true
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, started)
	assert.NoError(t, a.Stop())
}

func TestApplication_StarterFailure(t *testing.T) {
	a := New(discard(), testConfig(), pingerFunc(func(context.Context) error { return nil }))
	a.SetStarters(starterFunc(func(ctx context.Context) error { return errors.New("boom") }))

	assert.Error(t, a.Start(context.Background()))
}
