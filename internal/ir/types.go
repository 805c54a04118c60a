package ir

// ActionType is the discriminator carried by every action
type ActionType string

// InitActionType is reserved for the marker action a store reduces once at
// construction time
const InitActionType ActionType = "@@reducekit/INIT"

// Action is a request to transition state. Concrete action types are the
// variants of the union; ActionType returns the variant's discriminator.
type Action interface {
	ActionType() ActionType
}

// Named is a general-purpose action carrying a discriminator and an optional payload
type Named struct {
	Type    ActionType
	Payload any
}

// ActionType implements Action
func (n Named) ActionType() ActionType {
	return n.Type
}

// Init is the marker action used to compute a store's first state
var Init Action = Named{Type: InitActionType}

// TypeOf returns the discriminator of an action, or "" for nil
func TypeOf(a Action) ActionType {
	if a == nil {
		return ""
	}
	return a.ActionType()
}

// Handler computes the next state for one action type
type Handler[S any] func(state S, action Action) (S, error)
