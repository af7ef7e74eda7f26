package sidechannel

import "testing"

func TestConnStateSetGet(t *testing.T) {
	var s connState
	if got := s.get(); got != StateIdle {
		t.Fatalf("zero-value connState = %v, want StateIdle", got)
	}

	s.set(StateConnected)
	if got := s.get(); got != StateConnected {
		t.Fatalf("after set(StateConnected), get() = %v", got)
	}

	s.set(StateDraining)
	if got := s.get(); got != StateDraining {
		t.Fatalf("after set(StateDraining), get() = %v", got)
	}

	s.set(StateClosed)
	if got := s.get(); got != StateClosed {
		t.Fatalf("after set(StateClosed), get() = %v", got)
	}
}
