// Package api is a thin client for the Runloop control plane.
//
// The client authenticates with a bearer token and speaks plain JSON
// over HTTP. Every list endpoint uses forward-cursor pagination: the
// request carries limit and starting_after (the id of the last item of
// the previous page) and the response reports has_more and a
// best-effort total_count. The *PageFunc methods adapt each listing to
// the pager package so screens can instantiate pagination engines
// directly from a client.
//
// The client performs no retries and no response classification beyond
// the HTTP status; failures surface as *Error and are left to the
// caller to present.
package api
