package reducekit

// Chain returns a reducer that feeds the state through each reducer in
// order. The first error stops the chain and the original state is
// returned with it.
func Chain[S any](reducers ...Reducer[S]) Reducer[S] {
	return func(state S, action Action) (S, error) {
		next := state
		for _, r := range reducers {
			var err error
			next, err = r(next, action)
			if err != nil {
				return state, err
			}
		}
		return next, nil
	}
}

// Focus lifts a reducer over a sub-state of S. get extracts the sub-state
// and set returns a copy of S carrying the new sub-state.
func Focus[S, T any](get func(S) T, set func(S, T) S, r Reducer[T]) Reducer[S] {
	return func(state S, action Action) (S, error) {
		sub, err := r(get(state), action)
		if err != nil {
			return state, err
		}
		return set(state, sub), nil
	}
}
