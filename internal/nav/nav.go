package nav

// Params carries screen-scoped parameters. Keys and values are opaque
// to the state machine.
type Params map[string]any

// Entry is a single history record: the screen that was current and
// the params it had when navigation moved away from it.
type Entry struct {
	Screen string
	Params Params
}

// State is an immutable snapshot of the navigation stack. All
// transitions return a new State; the receiver is never modified.
type State struct {
	Screen  string
	Params  Params
	history []Entry

	// The configured initial entry and history, carried through every
	// transition so Reset and the GoBack floor can restore them.
	initial        Entry
	initialHistory []Entry
}

// Option configures Initialize.
type Option func(*State)

// WithInitialScreen sets the root screen.
func WithInitialScreen(screen string) Option {
	return func(s *State) {
		s.initial.Screen = screen
	}
}

// WithInitialParams sets the root screen's params.
func WithInitialParams(params Params) Option {
	return func(s *State) {
		s.initial.Params = params
	}
}

// WithInitialHistory seeds the history stack, oldest first.
func WithInitialHistory(history []Entry) Option {
	return func(s *State) {
		s.initialHistory = copyHistory(history)
	}
}

// DefaultScreen is the root screen used when none is configured.
const DefaultScreen = "devboxes"

// Initialize returns the starting navigation state.
func Initialize(opts ...Option) State {
	s := State{
		initial: Entry{Screen: DefaultScreen, Params: Params{}},
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.Screen = s.initial.Screen
	s.Params = s.initial.Params
	s.history = copyHistory(s.initialHistory)
	return s
}

// Navigate pushes the current screen onto history and makes screen
// current. A nil params is treated as empty.
func Navigate(s State, screen string, params Params) State {
	if params == nil {
		params = Params{}
	}
	next := s
	next.history = append(copyHistory(s.history), Entry{Screen: s.Screen, Params: s.Params})
	next.Screen = screen
	next.Params = params
	return next
}

// Push is an alias for Navigate.
func Push(s State, screen string, params Params) State {
	return Navigate(s, screen, params)
}

// Replace makes screen current without touching history.
func Replace(s State, screen string, params Params) State {
	if params == nil {
		params = Params{}
	}
	next := s
	next.Screen = screen
	next.Params = params
	return next
}

// GoBack pops the most recent history entry. With empty history it
// returns the root screen with empty params and empty history; this is
// an absorbing boundary, not an error.
func GoBack(s State) State {
	next := s
	if len(s.history) == 0 {
		next.Screen = s.initial.Screen
		next.Params = Params{}
		next.history = nil
		return next
	}
	last := s.history[len(s.history)-1]
	next.Screen = last.Screen
	next.Params = last.Params
	next.history = copyHistory(s.history[:len(s.history)-1])
	return next
}

// Reset returns the configured initial state, discarding everything
// accumulated since Initialize.
func Reset(s State) State {
	next := State{initial: s.initial, initialHistory: s.initialHistory}
	next.Screen = s.initial.Screen
	next.Params = s.initial.Params
	next.history = copyHistory(s.initialHistory)
	return next
}

// CanGoBack reports whether history is non-empty.
func CanGoBack(s State) bool {
	return len(s.history) > 0
}

// History returns a copy of the history stack, oldest first.
func (s State) History() []Entry {
	return copyHistory(s.history)
}

// Depth returns the number of history entries.
func (s State) Depth() int {
	return len(s.history)
}

func copyHistory(history []Entry) []Entry {
	if len(history) == 0 {
		return nil
	}
	out := make([]Entry, len(history))
	copy(out, history)
	return out
}
