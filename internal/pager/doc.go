// Package pager implements the cursor-based pagination engine behind
// every list screen in the interactive browser.
//
// An Engine presents a remote, forward-cursor-paginated list as a
// sequence of fixed-size pages. The cursor addressing a page is always
// the identifier of the last item of the page before it, so only
// sequential forward traversal and replay of previously visited pages
// is possible; random access to an unvisited page is not, which
// matches typical forward-cursor list APIs.
//
// # Concurrency
//
// The engine never launches overlapping fetches: a boolean in-flight
// guard is checked before any dispatch (NextPage, PrevPage, Refresh,
// or a poll tick) and cleared only when the fetch settles. An
// operation that finds the guard set is skipped silently, never
// queued. Because overlap is prevented rather than reconciled,
// results always commit in dispatch order.
//
// Close clears a liveness flag; any fetch result arriving afterwards
// is discarded without mutating state. The fetch function receives a
// context cancelled at Close but is not otherwise aborted.
//
// # Flags
//
// Loading is raised only for the first fetch after New or after a
// reset-dependency change (the full-screen spinner case). Navigating
// is raised only while fetching a page other than the displayed one,
// so stale rows stay visible behind a lightweight indicator. A poll
// refresh raises neither.
//
// On a failed fetch the error is recorded verbatim and everything
// else, items included, is left exactly as it was; the next successful
// fetch clears it. The engine never interprets why a fetch failed.
//
// # Replay vs. cache
//
// By default, navigating back to a page re-issues the fetch with the
// page's remembered cursor, so a live list of ephemeral resources is
// always rendered fresh. Config.CachePages selects the alternative
// mode that serves previously fetched pages instantly and invalidates
// the whole cache on Refresh, poll tick, or reset.
package pager
