// Package testutil provides test utilities for rlctl tests
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/app"
	"github.com/runloopai/rlctl/internal/config"
)

// TestEnv holds the test environment: a fake control plane behind an
// httptest server and an App wired to it.
type TestEnv struct {
	T      *testing.T
	Server *httptest.Server
	Mux    *http.ServeMux
	Config *config.Config
	App    *app.App
}

// NewTestEnv creates a test environment. Handlers are registered on
// env.Mux; unhandled paths return 404 like the real service. The App
// is installed as app.Default so command code under test picks it up;
// the previous default is restored on cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIKey:       "test-key",
		Env:          config.EnvProd,
		PageSize:     config.DefaultPageSize,
		PollInterval: time.Hour,
	}

	a, err := app.New(
		app.WithConfig(cfg),
		app.WithClient(api.NewClient(srv.URL, cfg.APIKey)),
	)
	if err != nil {
		t.Fatalf("Failed to build test app: %v", err)
	}

	prev := app.SetDefault(a)
	t.Cleanup(func() { app.SetDefault(prev) })

	return &TestEnv{
		T:      t,
		Server: srv,
		Mux:    mux,
		Config: cfg,
		App:    a,
	}
}

// Handle registers a handler serving the named fixture for a path.
func (e *TestEnv) Handle(path, fixture string) {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	e.Mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
}

// HandleFunc registers a raw handler for a path.
func (e *TestEnv) HandleFunc(path string, fn http.HandlerFunc) {
	e.Mux.HandleFunc(path, fn)
}
