package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/runloopai/rlctl/internal/app"
)

// requestTimeout bounds a single command's API interaction.
const requestTimeout = 60 * time.Second

// getApp returns the installed application context, or builds one
// from the environment. This is a helper to reduce repetition in
// commands.
func getApp() (*app.App, error) {
	a := app.Default
	if a == nil {
		var err error
		a, err = app.New()
		if err != nil {
			return nil, err
		}
	}
	if err := a.RequireAuth(); err != nil {
		return nil, err
	}
	return a, nil
}

// cmdContext returns a context for one command invocation.
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// formatTimestamp renders a millisecond epoch as local time.
func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}

// kvLine prints one aligned key/value detail row.
func kvLine(key string, value any) {
	fmt.Printf("  %-14s %v\n", key+":", value)
}
