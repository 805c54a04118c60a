package reducekit

import "github.com/felixgeelhaar/reducekit/internal/ir"

// Re-export non-generic types from internal/ir for public API
type (
	// ActionType is the discriminator carried by every action
	ActionType = ir.ActionType
	// Action is a request to transition state; concrete types are the variants
	Action = ir.Action
	// Named is a general-purpose action with a discriminator and payload
	Named = ir.Named
	// ValidationError lists the problems found while building a reducer
	ValidationError = ir.ValidationError
)

// InitActionType is the discriminator of the store's construction-time marker action
const InitActionType = ir.InitActionType

// Init is the marker action reduced once, against the zero state, when a store is created
var Init = ir.Init

// Reducer computes the next state from the current state and an action.
// It must be pure, must not mutate state, and must return state unchanged
// for actions it does not recognize.
type Reducer[S any] func(state S, action Action) (S, error)

// Handler computes the next state for a single action type.
type Handler[S any] func(state S, action Action) (S, error)

// Listener is notified, with no arguments, after every completed transition
type Listener func()

// SubscriptionID identifies one listener registration within a store
type SubscriptionID uint64

// TypeOf returns the discriminator of an action, or "" for nil
func TypeOf(a Action) ActionType {
	return ir.TypeOf(a)
}
