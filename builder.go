package reducekit

import "github.com/felixgeelhaar/reducekit/internal/ir"

// ReducerBuilder provides a fluent API for constructing handler-table reducers
type ReducerBuilder[S any] struct {
	id       string
	initial  S
	handlers []*HandlerBuilder[S]
}

// HandlerBuilder provides a fluent API for a single action handler
type HandlerBuilder[S any] struct {
	reducer    *ReducerBuilder[S]
	actionType ActionType
	handler    Handler[S]
}

// NewReducer creates a new ReducerBuilder with the given ID
func NewReducer[S any](id string) *ReducerBuilder[S] {
	return &ReducerBuilder[S]{
		id: id,
	}
}

// WithInitial sets the state produced for the init action
func (b *ReducerBuilder[S]) WithInitial(initial S) *ReducerBuilder[S] {
	b.initial = initial
	return b
}

// On registers the handler for an action type
func (b *ReducerBuilder[S]) On(t ActionType, h Handler[S]) *ReducerBuilder[S] {
	b.handlers = append(b.handlers, &HandlerBuilder[S]{
		reducer:    b,
		actionType: t,
		handler:    h,
	})
	return b
}

// Handle starts building a handler for an action type. Use Do to attach
// the function.
func (b *ReducerBuilder[S]) Handle(t ActionType) *HandlerBuilder[S] {
	hb := &HandlerBuilder[S]{
		reducer:    b,
		actionType: t,
	}
	b.handlers = append(b.handlers, hb)
	return hb
}

// Build constructs the final ReducerConfig from the builder
func (b *ReducerBuilder[S]) Build() (*ir.ReducerConfig[S], error) {
	cfg := ir.NewReducerConfig(b.id, b.initial)

	for _, hb := range b.handlers {
		cfg.Handlers = append(cfg.Handlers, ir.NewHandlerConfig(hb.actionType, ir.Handler[S](hb.handler)))
	}

	if err := ir.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// --- HandlerBuilder methods ---

// Do sets the function that reduces this action type
func (h *HandlerBuilder[S]) Do(fn Handler[S]) *HandlerBuilder[S] {
	h.handler = fn
	return h
}

// Set makes the handler return a fixed state regardless of input
func (h *HandlerBuilder[S]) Set(state S) *HandlerBuilder[S] {
	h.handler = func(S, Action) (S, error) {
		return state, nil
	}
	return h
}

// Handle starts a new handler on the same reducer (chainable)
func (h *HandlerBuilder[S]) Handle(t ActionType) *HandlerBuilder[S] {
	return h.reducer.Handle(t)
}

// Done completes the handler and returns to the reducer builder
func (h *HandlerBuilder[S]) Done() *ReducerBuilder[S] {
	return h.reducer
}
