package ir

// ReducerConfig is the immutable internal representation of a reducer table
type ReducerConfig[S any] struct {
	ID       string
	Initial  S
	Handlers []*HandlerConfig[S]
}

// HandlerConfig binds a handler to the action type it reduces
type HandlerConfig[S any] struct {
	Type   ActionType
	Handle Handler[S]
}

// NewReducerConfig creates a new ReducerConfig with no handlers
func NewReducerConfig[S any](id string, initial S) *ReducerConfig[S] {
	return &ReducerConfig[S]{
		ID:       id,
		Initial:  initial,
		Handlers: nil,
	}
}

// NewHandlerConfig creates a new HandlerConfig
func NewHandlerConfig[S any](t ActionType, h Handler[S]) *HandlerConfig[S] {
	return &HandlerConfig[S]{
		Type:   t,
		Handle: h,
	}
}

// FindHandler returns the first handler registered for the given type, or nil
func (r *ReducerConfig[S]) FindHandler(t ActionType) *HandlerConfig[S] {
	for _, h := range r.Handlers {
		if h.Type == t {
			return h
		}
	}
	return nil
}

// ActionTypes returns the handled action types in registration order
func (r *ReducerConfig[S]) ActionTypes() []ActionType {
	types := make([]ActionType, 0, len(r.Handlers))
	for _, h := range r.Handlers {
		types = append(types, h.Type)
	}
	return types
}

// Reduce computes the next state. The init action yields the initial state,
// a handled action yields its handler's result, and anything else yields the
// state unchanged.
func (r *ReducerConfig[S]) Reduce(state S, action Action) (S, error) {
	t := TypeOf(action)
	if t == InitActionType {
		return r.Initial, nil
	}
	h := r.FindHandler(t)
	if h == nil || h.Handle == nil {
		return state, nil
	}
	return h.Handle(state, action)
}
