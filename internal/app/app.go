// Package app provides the application context for rlctl.
// It allows dependency injection for testing.
package app

import (
	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/config"
	"github.com/runloopai/rlctl/internal/errors"
)

// App holds the application dependencies
type App struct {
	// Config is the resolved client configuration
	Config *config.Config

	// Client is the control-plane API client
	Client *api.Client
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithClient sets a custom API client
func WithClient(c *api.Client) Option {
	return func(a *App) {
		a.Client = c
	}
}

// New creates a new App with the given options.
// If no configuration is provided via WithConfig, it is loaded from
// the environment and the optional config file.
func New(opts ...Option) (*App, error) {
	a := &App{}

	for _, opt := range opts {
		opt(a)
	}

	if a.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, errors.ConfigError("failed to load configuration", err)
		}
		a.Config = cfg
	}

	if a.Client == nil {
		a.Client = api.NewClient(a.Config.BaseURL(), a.Config.APIKey)
	}

	return a, nil
}

// Default is the process-wide App, when one has been installed.
// Commands fall back to building their own when it is nil; tests
// install one wired to a fake control plane.
var Default *App

// SetDefault installs the process-wide App and returns the previous
// one so tests can restore it.
func SetDefault(a *App) *App {
	prev := Default
	Default = a
	return prev
}

// RequireAuth returns an error when no API key is configured.
func (a *App) RequireAuth() error {
	if a.Config.APIKey == "" {
		return errors.MissingAPIKey()
	}
	return nil
}
