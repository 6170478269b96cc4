package pager

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Request addresses one window of a remote list. Cursor is the opaque
// identifier of the last item of the previous page, or empty for the
// start of the source order.
type Request struct {
	Limit  int
	Cursor string
}

// Page is one fetched window. TotalCount <= 0 means the source did not
// report a total.
type Page[T any] struct {
	Items      []T
	HasMore    bool
	TotalCount int
}

// FetchFunc retrieves one page from the data source. Retry, backoff and
// timeout policy belong to the fetch function, not the engine.
type FetchFunc[T any] func(ctx context.Context, req Request) (Page[T], error)

// Config configures an Engine for one logical list+filter combination.
type Config[T any] struct {
	Fetch    FetchFunc[T]
	PageSize int

	// ItemID extracts the stable identifier used as a forward cursor.
	ItemID func(item T) string

	// PollInterval is the cadence of the background refresh of the
	// currently displayed page. Zero disables polling entirely.
	PollInterval time.Duration

	// PollingEnabled is the initial suspension state; it can be toggled
	// later with SetPollingEnabled without touching the timer.
	PollingEnabled bool

	// ResetDeps is the initial reset-dependency list; see SetResetDeps.
	ResetDeps []any

	// CachePages selects the page-caching mode: previously fetched
	// pages are served instantly on back/forward navigation and the
	// whole cache is invalidated on Refresh, poll tick, or reset. The
	// default replay mode re-fetches on every navigation instead,
	// trading latency for freshness. The two modes have materially
	// different staleness guarantees; pick deliberately.
	CachePages bool

	// OnUpdate, if set, is invoked after every state change, outside
	// the engine lock. The presentation layer typically uses it to
	// schedule a repaint.
	OnUpdate func()
}

// Snapshot is the read-only view handed to the presentation layer.
// Cursor bookkeeping is deliberately not part of it.
type Snapshot[T any] struct {
	Items      []T
	Loading    bool
	Navigating bool
	Err        error
	Page       int
	HasMore    bool
	HasPrev    bool
	TotalCount int
}

type fetchKind int

const (
	fetchInitial fetchKind = iota
	fetchNavigate
	fetchRefresh
)

// Engine presents a forward-cursor remote list as fixed-size pages and
// keeps the displayed page fresh on a poll interval. It owns all of its
// mutable state; instances must not be shared across unrelated screens.
type Engine[T any] struct {
	cfg Config[T]

	ctx    context.Context
	cancel context.CancelFunc
	alive  *atomic.Bool

	mu             sync.Mutex
	started        bool
	inFlight       bool
	epoch          uint64
	pollingEnabled bool

	items      []T
	loading    bool
	navigating bool
	err        error
	page       int // committed (displayed) page
	target     int // page being fetched while navigating
	hasMore    bool
	totalCount int
	resetDeps  []any

	// cursors maps page number to the id of that page's last item,
	// recorded only after a successful fetch with at least one item.
	cursors map[int]string

	// cache holds fetched pages in CachePages mode only.
	cache map[int]Page[T]
}

// New validates the configuration and returns an idle Engine. Call
// Start to load page zero and begin polling.
func New[T any](cfg Config[T]) (*Engine[T], error) {
	if cfg.Fetch == nil {
		return nil, fmt.Errorf("pager: Fetch is required")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("pager: PageSize must be positive (got %d)", cfg.PageSize)
	}
	if cfg.ItemID == nil {
		return nil, fmt.Errorf("pager: ItemID is required")
	}
	if cfg.PollInterval < 0 {
		return nil, fmt.Errorf("pager: PollInterval must not be negative (got %s)", cfg.PollInterval)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine[T]{
		cfg:            cfg,
		ctx:            ctx,
		cancel:         cancel,
		alive:          atomic.NewBool(true),
		pollingEnabled: cfg.PollingEnabled,
		resetDeps:      copyDeps(cfg.ResetDeps),
		cursors:        make(map[int]string),
	}
	if cfg.CachePages {
		e.cache = make(map[int]Page[T])
	}
	return e, nil
}

// Start dispatches the initial page-zero load under the loading flag
// and starts the poll ticker. Calling Start more than once is a no-op.
func (e *Engine[T]) Start() {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return
	}
	e.started = true
	e.loading = true
	dispatched := e.dispatchLocked(0, fetchInitial)
	e.mu.Unlock()

	if e.cfg.PollInterval > 0 {
		go e.pollLoop()
	}
	if dispatched {
		e.notify()
	}
}

// Close tears the engine down. Any fetch result arriving afterwards is
// discarded without mutating state.
func (e *Engine[T]) Close() {
	e.alive.Store(false)
	e.cancel()
}

// Snapshot returns a copy of the externally visible state.
func (e *Engine[T]) Snapshot() Snapshot[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	page := e.page
	if e.navigating {
		page = e.target
	}

	items := make([]T, len(e.items))
	copy(items, e.items)

	return Snapshot[T]{
		Items:      items,
		Loading:    e.loading,
		Navigating: e.navigating,
		Err:        e.err,
		Page:       page,
		HasMore:    e.hasMore,
		HasPrev:    page > 0,
		TotalCount: e.totalCount,
	}
}

// NextPage fetches the following page under the navigating flag. It is
// a no-op while a fetch is outstanding or when there is no next page.
func (e *Engine[T]) NextPage() {
	e.mu.Lock()
	if e.loading || e.navigating || e.inFlight || !e.hasMore {
		e.mu.Unlock()
		return
	}
	e.advanceLocked(e.page + 1)
}

// PrevPage re-fetches the previous page by replaying its remembered
// cursor. It is a no-op on page zero or while a fetch is outstanding.
func (e *Engine[T]) PrevPage() {
	e.mu.Lock()
	if e.loading || e.navigating || e.inFlight || e.page == 0 {
		e.mu.Unlock()
		return
	}
	e.advanceLocked(e.page - 1)
}

// advanceLocked moves to page, serving from the page cache when the
// caching mode holds it, otherwise dispatching a navigation fetch.
// Called with mu held; always unlocks.
func (e *Engine[T]) advanceLocked(page int) {
	if e.cache != nil {
		if cached, ok := e.cache[page]; ok {
			e.page = page
			e.applyPageLocked(page, cached)
			e.mu.Unlock()
			e.notify()
			return
		}
	}

	e.navigating = true
	e.target = page
	if !e.dispatchLocked(page, fetchNavigate) {
		// Cursor for this page was never recorded; abandon the move.
		e.navigating = false
		e.target = e.page
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	e.notify()
}

// Refresh re-fetches the currently displayed page without touching the
// page number or cursor history, and without raising loading or
// navigating. Skipped silently while another fetch is outstanding.
func (e *Engine[T]) Refresh() {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return
	}
	if e.cache != nil {
		e.cache = make(map[int]Page[T])
	}
	e.dispatchLocked(e.page, fetchRefresh)
	e.mu.Unlock()
}

// SetPollingEnabled suspends or resumes the poll refresh. The ticker
// keeps running either way, so resuming re-enables polling at the same
// cadence.
func (e *Engine[T]) SetPollingEnabled(enabled bool) {
	e.mu.Lock()
	e.pollingEnabled = enabled
	e.mu.Unlock()
}

// SetResetDeps compares deps structurally against the previous list.
// On change the engine discards items, page position, cursor history
// and page cache, and performs a fresh page-zero load under the
// loading flag. An in-flight fetch from before the reset is discarded
// when it settles.
func (e *Engine[T]) SetResetDeps(deps []any) {
	e.mu.Lock()
	if reflect.DeepEqual(deps, e.resetDeps) {
		e.mu.Unlock()
		return
	}
	e.resetDeps = copyDeps(deps)

	// Invalidate any outstanding fetch instead of waiting for it.
	e.epoch++
	e.inFlight = false

	e.items = nil
	e.page = 0
	e.target = 0
	e.hasMore = false
	e.totalCount = 0
	e.err = nil
	e.navigating = false
	e.cursors = make(map[int]string)
	if e.cache != nil {
		e.cache = make(map[int]Page[T])
	}

	e.loading = true
	e.dispatchLocked(0, fetchInitial)
	e.mu.Unlock()
	e.notify()
}

// pollLoop drives the background refresh until Close.
func (e *Engine[T]) pollLoop() {
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.pollTick()
		}
	}
}

// pollTick behaves like Refresh, additionally gated on the suspension
// flag. A tick that finds a fetch outstanding is skipped, not queued.
func (e *Engine[T]) pollTick() {
	e.mu.Lock()
	if !e.pollingEnabled || e.inFlight || !e.started {
		e.mu.Unlock()
		return
	}
	if e.cache != nil {
		e.cache = make(map[int]Page[T])
	}
	e.dispatchLocked(e.page, fetchRefresh)
	e.mu.Unlock()
}

// cursorForLocked resolves the forward cursor addressing page. Page
// zero is always addressable; page N needs the recorded last-item id
// of page N-1.
func (e *Engine[T]) cursorForLocked(page int) (string, bool) {
	if page == 0 {
		return "", true
	}
	cursor, ok := e.cursors[page-1]
	return cursor, ok
}

// dispatchLocked launches the fetch for page if the in-flight guard is
// clear and the page is addressable. Called with mu held.
func (e *Engine[T]) dispatchLocked(page int, kind fetchKind) bool {
	if e.inFlight {
		return false
	}
	cursor, ok := e.cursorForLocked(page)
	if !ok {
		return false
	}

	e.inFlight = true
	epoch := e.epoch

	go func() {
		result, err := e.cfg.Fetch(e.ctx, Request{Limit: e.cfg.PageSize, Cursor: cursor})
		e.apply(epoch, page, kind, result, err)
	}()
	return true
}

// apply commits a settled fetch. Results arriving after Close, or
// dispatched before a reset, are discarded without mutating state.
func (e *Engine[T]) apply(epoch uint64, page int, kind fetchKind, result Page[T], err error) {
	if !e.alive.Load() {
		return
	}

	e.mu.Lock()
	if epoch != e.epoch {
		e.mu.Unlock()
		return
	}

	e.inFlight = false
	e.loading = false
	e.navigating = false

	if err != nil {
		// Items, page position and cursor history stay exactly as they
		// were; only the error is recorded.
		e.err = err
		e.target = e.page
		e.mu.Unlock()
		e.notify()
		return
	}

	e.err = nil
	if kind == fetchNavigate {
		e.page = page
	}
	e.applyPageLocked(page, result)
	if len(result.Items) > 0 {
		e.cursors[page] = e.cfg.ItemID(result.Items[len(result.Items)-1])
	}
	if e.cache != nil {
		e.cache[page] = result
	}
	e.mu.Unlock()
	e.notify()
}

// applyPageLocked installs a page's window into the visible state.
func (e *Engine[T]) applyPageLocked(page int, result Page[T]) {
	e.items = result.Items
	e.hasMore = result.HasMore
	e.target = page
	if result.TotalCount > 0 {
		e.totalCount = result.TotalCount
	}
}

func (e *Engine[T]) notify() {
	if e.cfg.OnUpdate != nil && e.alive.Load() {
		e.cfg.OnUpdate()
	}
}

func copyDeps(deps []any) []any {
	if len(deps) == 0 {
		return nil
	}
	out := make([]any, len(deps))
	copy(out, deps)
	return out
}
