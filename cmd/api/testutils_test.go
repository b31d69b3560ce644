package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/lib/logger/handlers/slogdiscard"
	"moviecatalog/proj/internal/lib/ratelimit"
	"moviecatalog/proj/internal/services"
	"moviecatalog/proj/internal/storage/memory"
)

const testSecret = "test-secret"

func newTestConfig() *config.Config {
	return &config.Config{
		AppSecret:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
		Storage:    config.Storage{Driver: config.StorageMemory},
	}
}

// NewTestApplication builds an app over fresh in-memory stores seeded with the
// default catalog.
func NewTestApplication(t *testing.T, limiter ratelimit.Limiter) *Application {
	t.Helper()
	cfg := newTestConfig()
	log := slogdiscard.NewDiscardLogger()
	svcs := services.New(log, cfg, memory.NewMovieModel(), memory.NewUserModel())
	_, err := svcs.Movies.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	return NewApplication(cfg, log, svcs, limiter, config.StorageMemory)
}

type testResponse struct {
	Code int
	Body map[string]any
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) testResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	resp := testResponse{Code: rec.Code}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp.Body), rec.Body.String())
	}
	return resp
}

// registerAndLogin returns a token for a freshly registered user.
func registerAndLogin(t *testing.T, h http.Handler, username string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": "password"}
	resp := doRequest(t, h, http.MethodPost, "/register", creds, "")
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body)
	resp = doRequest(t, h, http.MethodPost, "/login", creds, "")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body)
	token, ok := resp.Body["token"].(string)
	require.True(t, ok)
	return token
}

func movieCount(t *testing.T, app *Application) int {
	t.Helper()
	count, err := app.Services.Movies.Count(context.Background())
	require.NoError(t, err)
	return count
}
