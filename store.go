package reducekit

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds a single state snapshot, applies a reducer to every
// dispatched action and notifies listeners after each transition.
//
// A Store is not safe for concurrent use. Dispatch, Subscribe and
// Unsubscribe must be called from one goroutine of control; the store
// itself never starts goroutines.
type Store[S any] struct {
	id      string
	reducer Reducer[S]
	state   S
	tracer  Tracer[S]
	logger  *zap.Logger

	listeners []listenerEntry
	nextID    SubscriptionID
	reducing  bool
}

type listenerEntry struct {
	id SubscriptionID
	fn Listener
}

// Option configures a Store
type Option func(*settings)

type settings struct {
	id     string
	logger *zap.Logger
	tracer any
}

// WithLogger sets the logger used for dispatch and listener diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithID sets the store identifier. By default a random UUID is used.
func WithID(id string) Option {
	return func(s *settings) {
		s.id = id
	}
}

// WithTracer registers a tracer that observes every committed transition
// before listeners are notified.
func WithTracer[S any](t Tracer[S]) Option {
	return func(s *settings) {
		s.tracer = t
	}
}

// New creates a store and computes its first state by reducing Init
// against the zero value of S.
func New[S any](reducer Reducer[S], opts ...Option) (*Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}

	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	s := &Store[S]{
		id:      cfg.id,
		reducer: reducer,
		logger:  cfg.logger.With(zap.String("store", cfg.id)),
	}

	if cfg.tracer != nil {
		t, ok := cfg.tracer.(Tracer[S])
		if !ok {
			return nil, fmt.Errorf("reducekit: tracer %T does not observe %T states", cfg.tracer, s.state)
		}
		s.tracer = t
	}

	var zero S
	initial, err := s.reduce(zero, Init)
	if err != nil {
		return nil, err
	}
	s.state = initial

	s.logger.Debug("store created")
	return s, nil
}

// ID returns the store identifier
func (s *Store[S]) ID() string {
	return s.id
}

// State returns the current state snapshot
func (s *Store[S]) State() S {
	return s.state
}

// Listeners returns the number of active listener registrations
func (s *Store[S]) Listeners() int {
	return len(s.listeners)
}

// Dispatch reduces the action against the current state, replaces the
// state with the result and then calls every listener registered at the
// moment notification begins, in subscription order.
//
// A reducer error leaves the state untouched, skips notification and is
// returned as a *ReducerError. Listener panics are recovered so the
// remaining listeners still run; they are reported afterwards as a
// *ListenerPanicError.
func (s *Store[S]) Dispatch(action Action) error {
	if action == nil {
		return ErrNilAction
	}
	if s.reducing {
		return ErrDispatchInReducer
	}

	prev := s.state
	next, err := s.reduce(prev, action)
	if err != nil {
		s.logger.Debug("reducer failed",
			zap.String("action", string(action.ActionType())),
			zap.Error(err))
		return err
	}
	s.state = next

	if s.tracer != nil {
		s.tracer.Trace(action, prev, next)
	}

	// Listeners subscribed or removed during this fan-out take effect from
	// the next dispatch.
	snapshot := make([]listenerEntry, len(s.listeners))
	copy(snapshot, s.listeners)

	s.logger.Debug("dispatch",
		zap.String("action", string(action.ActionType())),
		zap.Int("listeners", len(snapshot)))

	var panics []ListenerPanic
	for _, l := range snapshot {
		if p := s.notify(l); p != nil {
			panics = append(panics, *p)
		}
	}

	if len(panics) > 0 {
		return &ListenerPanicError{Action: action.ActionType(), Panics: panics}
	}
	return nil
}

// Subscribe registers a listener and returns a handle that removes exactly
// this registration. Registering the same function twice yields two
// independent registrations.
func (s *Store[S]) Subscribe(listener Listener) *Subscription {
	if listener == nil {
		panic("reducekit: nil listener")
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: listener})
	return &Subscription{id: id, remove: s.Unsubscribe}
}

// Unsubscribe removes the registration with the given id. It reports
// whether a registration was removed.
func (s *Store[S]) Unsubscribe(id SubscriptionID) bool {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store[S]) reduce(state S, action Action) (next S, err error) {
	s.reducing = true
	defer func() { s.reducing = false }()

	next, err = s.reducer(state, action)
	if err != nil {
		return state, &ReducerError{Action: action.ActionType(), Err: err}
	}
	return next, nil
}

func (s *Store[S]) notify(l listenerEntry) (p *ListenerPanic) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("listener panicked",
				zap.Uint64("subscription", uint64(l.id)),
				zap.Any("panic", r))
			p = &ListenerPanic{Subscription: l.id, Value: r}
		}
	}()
	l.fn()
	return nil
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	id     SubscriptionID
	remove func(SubscriptionID) bool
	done   bool
}

// ID returns the registration id, usable with Store.Unsubscribe
func (sub *Subscription) ID() SubscriptionID {
	return sub.id
}

// Unsubscribe removes this registration. Calling it again is a no-op.
func (sub *Subscription) Unsubscribe() {
	if sub.done {
		return
	}
	sub.done = true
	sub.remove(sub.id)
}
