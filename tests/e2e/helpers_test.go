//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/probelab/gqlprobe/internal/adapter/postgres"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/record"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/session"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/testhelper"
	authpkg "github.com/probelab/gqlprobe/internal/auth"
	"github.com/probelab/gqlprobe/internal/config"
	authsvc "github.com/probelab/gqlprobe/internal/service/auth"
	echosvc "github.com/probelab/gqlprobe/internal/service/echo"
	"github.com/probelab/gqlprobe/internal/transport/graphql"
	"github.com/probelab/gqlprobe/internal/transport/graphql/dataloader"
	"github.com/probelab/gqlprobe/internal/transport/graphql/resolver"
	"github.com/probelab/gqlprobe/internal/transport/middleware"
	"github.com/probelab/gqlprobe/internal/transport/rest"
	"github.com/probelab/gqlprobe/pkg/gqlclient"
)

// Static test user available on every test server.
const (
	testUsername = "probe"
	testPassword = "s3cret-probe-pass"
)

// testServer wraps the full HTTP stack for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper), mirroring app.Run wiring.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	recordRepo := record.New(pool)
	sessionRepo := session.New(pool)
	txm := postgres.NewTxManager(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	users := authpkg.NewUserRegistry([]config.Credential{
		{Username: testUsername, PasswordHash: string(hash)},
	})
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	echoService := echosvc.NewService(logger, recordRepo, sessionRepo, txm, config.EchoConfig{
		MaxMessageLength: 4096,
		HistoryMaxLimit:  200,
		SessionsMaxLimit: 100,
	})
	authService := authsvc.NewService(logger, users, jwtMgr)

	schema, err := graphql.LoadSchema()
	require.NoError(t, err)
	exec := graphql.NewExecutor(logger, schema, resolver.New(echoService, authService))

	gqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.SessionID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Session-Id,X-Request-Id",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		dataloader.Middleware(&dataloader.Repos{Record: recordRepo}),
	)(graphql.NewHandler(logger, exec))

	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", gqlHandler)
	mux.Handle("OPTIONS /query", gqlHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// gql builds a typed client against the test server's query endpoint.
func (ts *testServer) gql(opts ...gqlclient.Option) *gqlclient.Client {
	opts = append([]gqlclient.Option{gqlclient.WithHTTPClient(ts.Client)}, opts...)
	return gqlclient.New(ts.URL+"/query", opts...)
}

// login authenticates the static test user and returns a bearer token.
func login(t *testing.T, ts *testServer) string {
	t.Helper()

	resp, err := ts.gql().Login(context.Background(), gqlclient.LoginVariables{
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Login.Token)
	return resp.Login.Token
}

// graphqlQuery sends a raw GraphQL POST and returns status + decoded body.
// Used where tests assert on the wire shape instead of typed bindings.
func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// gqlErrorCode extracts extensions.code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()

	errs, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errs)

	firstErr, ok := errs[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}
