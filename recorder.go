package reducekit

import "time"

// Tracer observes committed transitions. Trace runs after the state has
// been replaced and before listeners are notified.
type Tracer[S any] interface {
	Trace(action Action, prev, next S)
}

// Transition is one recorded state change
type Transition[S any] struct {
	Seq    int
	Type   ActionType
	Action Action
	Prev   S
	Next   S
	At     time.Time
}

// Recorder is a Tracer that keeps an in-memory history of transitions
type Recorder[S any] struct {
	capacity    int
	seq         int
	transitions []Transition[S]
	now         func() time.Time
}

// NewRecorder creates a recorder. A positive capacity bounds the history;
// once full, the oldest transition is dropped.
func NewRecorder[S any](capacity int) *Recorder[S] {
	return &Recorder[S]{
		capacity: capacity,
		now:      time.Now,
	}
}

// Trace implements Tracer
func (r *Recorder[S]) Trace(action Action, prev, next S) {
	r.seq++
	r.transitions = append(r.transitions, Transition[S]{
		Seq:    r.seq,
		Type:   TypeOf(action),
		Action: action,
		Prev:   prev,
		Next:   next,
		At:     r.now(),
	})
	if r.capacity > 0 && len(r.transitions) > r.capacity {
		r.transitions = r.transitions[len(r.transitions)-r.capacity:]
	}
}

// Transitions returns a copy of the recorded history, oldest first
func (r *Recorder[S]) Transitions() []Transition[S] {
	out := make([]Transition[S], len(r.transitions))
	copy(out, r.transitions)
	return out
}

// Len returns the number of transitions currently held
func (r *Recorder[S]) Len() int {
	return len(r.transitions)
}

// Reset clears the history. Sequence numbers keep increasing.
func (r *Recorder[S]) Reset() {
	r.transitions = nil
}
