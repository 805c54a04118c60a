package reducekit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilReducer is returned by New when no reducer is supplied
	ErrNilReducer = errors.New("reducekit: nil reducer")
	// ErrNilAction is returned by Dispatch for a nil action
	ErrNilAction = errors.New("reducekit: nil action")
	// ErrDispatchInReducer is returned when a reducer dispatches to its own store
	ErrDispatchInReducer = errors.New("reducekit: reducers may not dispatch actions")
)

// ReducerError reports a reducer failure. The store's state is left as it
// was before the failed dispatch.
type ReducerError struct {
	Action ActionType
	Err    error
}

func (e *ReducerError) Error() string {
	return fmt.Sprintf("reduce %q: %v", e.Action, e.Err)
}

func (e *ReducerError) Unwrap() error {
	return e.Err
}

// ListenerPanic records one listener that panicked during a fan-out
type ListenerPanic struct {
	Subscription SubscriptionID
	Value        any
}

// ListenerPanicError is returned by Dispatch when one or more listeners
// panicked. The transition itself is committed and every other listener
// has been notified.
type ListenerPanicError struct {
	Action ActionType
	Panics []ListenerPanic
}

func (e *ListenerPanicError) Error() string {
	parts := make([]string, 0, len(e.Panics))
	for _, p := range e.Panics {
		parts = append(parts, fmt.Sprintf("subscription %d: %v", p.Subscription, p.Value))
	}
	return fmt.Sprintf("dispatch %q: %d listener(s) panicked: %s",
		e.Action, len(e.Panics), strings.Join(parts, "; "))
}
