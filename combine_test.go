package reducekit

import (
	"errors"
	"testing"
)

type appState struct {
	Tally testState
	Ticks int
}

func TestChain_AppliesInOrder(t *testing.T) {
	double := func(s testState, a Action) (testState, error) {
		s.Count *= 2
		return s, nil
	}

	r := Chain(add, double)
	s, err := r(testState{Count: 1}, Named{Type: "ANY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count != 4 {
		t.Errorf("expected (1+1)*2 = 4, got %d", s.Count)
	}
}

func TestChain_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fail := func(s testState, a Action) (testState, error) {
		return s, boom
	}
	count := func(s testState, a Action) (testState, error) {
		calls++
		return s, nil
	}

	s, err := Chain(add, fail, count)(testState{Count: 1}, Named{Type: "ANY"})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if s.Count != 1 {
		t.Errorf("expected original state on error, got %d", s.Count)
	}
	if calls != 0 {
		t.Errorf("expected chain to stop, got %d calls", calls)
	}
}

func TestFocus_LiftsSubReducer(t *testing.T) {
	r := Chain(
		Focus(
			func(s appState) testState { return s.Tally },
			func(s appState, t testState) appState { s.Tally = t; return s },
			Reducer[testState](add),
		),
		func(s appState, a Action) (appState, error) {
			s.Ticks++
			return s, nil
		},
	)

	store, err := New(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = store.Dispatch(Named{Type: "ADD"})

	// Init counts as one pass through both reducers.
	if store.State().Tally.Count != 2 || store.State().Ticks != 2 {
		t.Errorf("unexpected state %+v", store.State())
	}
}

func TestFocus_ErrorKeepsParent(t *testing.T) {
	boom := errors.New("boom")
	r := Focus(
		func(s appState) testState { return s.Tally },
		func(s appState, t testState) appState { s.Tally = t; return s },
		func(s testState, a Action) (testState, error) { return testState{Count: 100}, boom },
	)

	s, err := r(appState{Ticks: 7}, Named{Type: "X"})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if s.Ticks != 7 || s.Tally.Count != 0 {
		t.Errorf("expected parent unchanged, got %+v", s)
	}
}
