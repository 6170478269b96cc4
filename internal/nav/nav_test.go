package nav

import (
	"reflect"
	"testing"
)

func TestInitialize_Defaults(t *testing.T) {
	s := Initialize()

	if s.Screen != DefaultScreen {
		t.Errorf("Screen = %q, want %q", s.Screen, DefaultScreen)
	}
	if len(s.Params) != 0 {
		t.Errorf("Params = %v, want empty", s.Params)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
	if CanGoBack(s) {
		t.Error("CanGoBack should be false on a fresh state")
	}
}

func TestInitialize_Options(t *testing.T) {
	seed := []Entry{{Screen: "home", Params: Params{}}}
	s := Initialize(
		WithInitialScreen("blueprints"),
		WithInitialParams(Params{"name": "base"}),
		WithInitialHistory(seed),
	)

	if s.Screen != "blueprints" {
		t.Errorf("Screen = %q, want %q", s.Screen, "blueprints")
	}
	if s.Params["name"] != "base" {
		t.Errorf("Params[name] = %v, want %q", s.Params["name"], "base")
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
}

func TestNavigate_PushesHistory(t *testing.T) {
	s := Initialize()
	s = Navigate(s, "devbox_detail", Params{"id": "dbx_1"})

	if s.Screen != "devbox_detail" {
		t.Errorf("Screen = %q, want devbox_detail", s.Screen)
	}
	if s.Params["id"] != "dbx_1" {
		t.Errorf("Params[id] = %v, want dbx_1", s.Params["id"])
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}

	hist := s.History()
	if hist[0].Screen != DefaultScreen {
		t.Errorf("history[0].Screen = %q, want %q", hist[0].Screen, DefaultScreen)
	}
}

func TestNavigate_PreservesCallOrder(t *testing.T) {
	s := Initialize()
	s = Navigate(s, "a", nil)
	s = Navigate(s, "b", nil)

	hist := s.History()
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	// history[0] is the oldest entry
	if hist[0].Screen != DefaultScreen {
		t.Errorf("history[0].Screen = %q, want %q", hist[0].Screen, DefaultScreen)
	}
	if hist[1].Screen != "a" {
		t.Errorf("history[1].Screen = %q, want %q", hist[1].Screen, "a")
	}
}

func TestGoBack_RoundTrip(t *testing.T) {
	// goBack(navigate(S, X, P)) == S for any S, X, P
	s := Navigate(Initialize(), "blueprints", Params{"name": "x"})
	before := s

	after := GoBack(Navigate(s, "devbox_detail", Params{"id": "dbx_9"}))

	if !statesEqual(after, before) {
		t.Errorf("round trip mismatch: got %+v, want %+v", after, before)
	}
}

func TestGoBack_EmptyHistory(t *testing.T) {
	s := Initialize(WithInitialScreen("devboxes"))
	s = Replace(s, "settings", Params{"tab": "ssh"})

	s = GoBack(s)

	if s.Screen != "devboxes" {
		t.Errorf("Screen = %q, want root screen devboxes", s.Screen)
	}
	if len(s.Params) != 0 {
		t.Errorf("Params = %v, want empty", s.Params)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}

	// Absorbing: a second GoBack is a no-op, not an error.
	again := GoBack(s)
	if !statesEqual(again, s) {
		t.Error("GoBack at the floor should be absorbing")
	}
}

func TestReplace_NeverGrowsHistory(t *testing.T) {
	s := Initialize()
	s = Navigate(s, "devbox_detail", Params{"id": "dbx_1"})
	depth := s.Depth()

	s = Replace(s, "devbox_logs", Params{"id": "dbx_1"})

	if s.Screen != "devbox_logs" {
		t.Errorf("Screen = %q, want devbox_logs", s.Screen)
	}
	if s.Depth() != depth {
		t.Errorf("Depth() = %d, want unchanged %d", s.Depth(), depth)
	}

	// GoBack after Replace restores the state before the most recent
	// Navigate, not the replaced screen.
	s = GoBack(s)
	if s.Screen != DefaultScreen {
		t.Errorf("Screen after GoBack = %q, want %q", s.Screen, DefaultScreen)
	}
}

func TestReset_MatchesInitialize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"defaults", nil},
		{"custom screen", []Option{WithInitialScreen("objects")}},
		{"custom params", []Option{
			WithInitialScreen("objects"),
			WithInitialParams(Params{"public": true}),
		}},
		{"seeded history", []Option{
			WithInitialHistory([]Entry{{Screen: "home", Params: Params{}}}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := Initialize(tt.opts...)

			mutated := Navigate(fresh, "a", Params{"k": 1})
			mutated = Navigate(mutated, "b", nil)
			mutated = Replace(mutated, "c", Params{"k": 2})

			if !statesEqual(Reset(mutated), fresh) {
				t.Error("Reset should reproduce the Initialize state exactly")
			}
		})
	}
}

func TestCanGoBack_Lifecycle(t *testing.T) {
	s := Initialize()
	if CanGoBack(s) {
		t.Error("fresh state should not be able to go back")
	}

	s = Navigate(s, "devbox_detail", nil)
	if !CanGoBack(s) {
		t.Error("should be able to go back after one Navigate")
	}

	s = GoBack(s)
	if CanGoBack(s) {
		t.Error("should not be able to go back after matching GoBack")
	}
}

func TestPush_IsNavigateAlias(t *testing.T) {
	base := Initialize()
	a := Navigate(base, "x", Params{"p": "q"})
	b := Push(base, "x", Params{"p": "q"})

	if !statesEqual(a, b) {
		t.Error("Push and Navigate should produce identical states")
	}
}

func TestTransitions_DoNotMutateReceiver(t *testing.T) {
	s := Navigate(Initialize(), "a", Params{"k": "v"})
	snapshot := Entry{Screen: s.Screen, Params: s.Params}
	depth := s.Depth()

	_ = Navigate(s, "b", nil)
	_ = Replace(s, "c", nil)
	_ = GoBack(s)
	_ = Reset(s)

	if s.Screen != snapshot.Screen || s.Depth() != depth {
		t.Error("transitions must not mutate their input state")
	}
	if !reflect.DeepEqual(s.Params, snapshot.Params) {
		t.Error("transitions must not mutate input params")
	}
}

func TestUnknownScreenStoredAsData(t *testing.T) {
	s := Navigate(Initialize(), "no-such-screen", nil)
	if s.Screen != "no-such-screen" {
		t.Errorf("Screen = %q, want the unvalidated identifier", s.Screen)
	}
}

func statesEqual(a, b State) bool {
	return a.Screen == b.Screen &&
		reflect.DeepEqual(a.Params, b.Params) &&
		reflect.DeepEqual(a.History(), b.History())
}
