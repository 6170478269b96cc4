// Package testutil provides test fixtures and utilities.
//
// This package contains embedded JSON fixtures mirroring control-plane
// responses, plus a test environment that pairs an httptest server with
// an App wired to it.
//
// # Test Environment
//
//	env := testutil.NewTestEnv(t)
//	env.Handle("/v1/devboxes", "devbox_list.json")
//	list, err := env.App.Client.ListDevboxes(ctx, api.DevboxListParams{})
//
// # Fixtures
//
// JSON fixtures are embedded using go:embed:
//
//	fixtures/devbox_list.json
//	fixtures/devbox_running.json
//	fixtures/blueprint_list.json
//
// Helper functions load and parse fixtures into API types:
//
//	list, err := testutil.DevboxList()
//	d, err := testutil.RunningDevbox()
//
// For custom parsing or edge cases use the raw bytes:
//
//	data, err := testutil.LoadFixture("devbox_list.json")
package testutil
