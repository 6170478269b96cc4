// Package nav implements the screen navigation state machine for the
// interactive browser.
//
// State is a pure value: every transition (Navigate, Push, Replace,
// GoBack, Reset) takes a State and returns a new one, so the machine
// has no hidden state, performs no I/O, and is safe to call from
// anywhere. Screens are opaque string identifiers and params are
// opaque maps; the machine stores them without validation.
//
// # History semantics
//
// Navigate (and its alias Push) records the outgoing screen on the
// history stack, growing it by exactly one entry. GoBack pops exactly
// one entry; with empty history it lands on the root screen with empty
// params rather than failing. Replace swaps the current screen without
// touching history. Reset restores the state Initialize produced.
//
// # Usage
//
//	state := nav.Initialize(nav.WithInitialScreen("devboxes"))
//	state = nav.Navigate(state, "devbox_detail", nav.Params{"id": id})
//	if nav.CanGoBack(state) {
//	    state = nav.GoBack(state)
//	}
package nav
