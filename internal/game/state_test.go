package game

import "testing"

func TestStateToggle(t *testing.T) {
	s := StateExplore
	if s = s.Toggle(); s != StateMap {
		t.Errorf("Toggle from explore = %v, want map", s)
	}
	if s = s.Toggle(); s != StateExplore {
		t.Errorf("Toggle from map = %v, want explore", s)
	}
	if got := State(9).String(); got != "unknown" {
		t.Errorf("String = %q, want unknown", got)
	}
}
