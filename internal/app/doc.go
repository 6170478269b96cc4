// Package app provides the application context for rlctl.
//
// This package manages application-wide dependencies using the
// functional options pattern, enabling easy testing through dependency
// injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Config *config.Config // Resolved client configuration
//	    Client *api.Client    // Control-plane API client
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a, err := app.New()
//
//	// Testing with custom dependencies
//	a, err := app.New(
//	    app.WithConfig(testConfig),
//	    app.WithClient(testClient),
//	)
//
// # Available Options
//
//	WithConfig(cfg)   // Custom configuration
//	WithClient(c)     // Custom API client
package app
