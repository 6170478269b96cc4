// Package logging provides logging utilities for rlctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("fetching devbox page", "cursor", cursor, "limit", limit)
//	logging.Warn("poll tick skipped", "reason", "fetch in flight")
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Using dev environment")
//	logging.UserSuccess("Devbox %s created", id)
//	logging.UserWarning("Update available: %s", version)
//	logging.UserError("Failed to shut down devbox: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
