// Package tui implements the interactive resource browser for rlctl.
//
// This package uses the Bubble Tea framework to build a full-screen
// browser over Runloop resources (devboxes, blueprints, objects, disk
// snapshots), with a detail view and paged log viewer per devbox.
//
// # Browser
//
// The browser composes two engines: a navigation state from
// internal/nav tracks which screen is visible and how the user got
// there, and one pagination engine from internal/pager per visited
// list screen drives cursor-based page fetches:
//
//	a, err := app.New()
//	if err != nil {
//	    return err
//	}
//	return tui.Run(a)
//
// # Keys
//
//   - j/k or arrows move the cursor, Enter opens the selected item
//   - [ and ] page backward and forward
//   - 1-4 switch top-level tabs (replacing the current history entry)
//   - f cycles the status filter where the screen has one
//   - r refreshes in place, esc goes back, q quits
//
// Engines outlive back-navigation: returning to a screen replays its
// current page from the server rather than showing stale cached rows.
// Only the visible screen polls; background screens have polling
// suspended until they are shown again.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
