//go:build e2e

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/testhelper"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/app"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/auth"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full HTTP stack for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Logger *slog.Logger
	jwt    *auth.JWTManager

	// failTransitions makes POST /plans/{id}/transition answer 500 without
	// reaching the store.
	failTransitions atomic.Bool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{WritesPerMinute: 0},
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-test-secret-that-is-at-least-32-characters",
			JWTIssuer:      "asymlab-e2e",
			AccessTokenTTL: time.Hour,
		},
		Board: config.BoardConfig{BadgeInlineCap: 3, HistoryLimit: 50, MaxListLimit: 1000},
		Log:   config.LogConfig{Level: "debug", Format: "text"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
}

// setupTestServer bootstraps the application handler on a real PostgreSQL
// container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler, cleanup := app.NewHandler(pool, cfg, logger, nil, jwtMgr)
	t.Cleanup(cleanup)

	ts := &testServer{Pool: pool, Logger: logger, jwt: jwtMgr}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ts.failTransitions.Load() && r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/transition") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "internal error", Code: api.CodeInternal})
			return
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	ts.URL = srv.URL
	ts.Client = srv.Client()
	return ts
}

// token mints an access token for a fresh operator and returns both.
func (ts *testServer) token(t *testing.T) (string, uuid.UUID) {
	t.Helper()
	actor := uuid.New()
	tok, err := ts.jwt.Issue(actor, "operator")
	require.NoError(t, err)
	return tok, actor
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeAs[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), "body: %s", raw)
	return v
}

func strPtr(s string) *string { return &s }
