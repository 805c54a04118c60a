package reducekit

import (
	"testing"
)

// Benchmark state
type BenchState struct {
	Count int
}

func benchAdd(s BenchState, a Action) (BenchState, error) {
	s.Count++
	return s, nil
}

// BenchmarkBuilder_BuildTime benchmarks reducer construction with builder
func BenchmarkBuilder_BuildTime(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := NewReducer[BenchState]("bench").
			On("ADD", benchAdd).
			On("SUBTRACT", benchAdd).
			Handle("RESET").Set(BenchState{}).
			Done().
			Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStore_Dispatch benchmarks a dispatch with no listeners
func BenchmarkStore_Dispatch(b *testing.B) {
	cfg, _ := NewReducer[BenchState]("bench").On("ADD", benchAdd).Build()
	store, _ := New(cfg.Reduce)
	action := Named{Type: "ADD"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Dispatch(action)
	}
}

// BenchmarkStore_DispatchListeners benchmarks fan-out to 10 listeners
func BenchmarkStore_DispatchListeners(b *testing.B) {
	cfg, _ := NewReducer[BenchState]("bench").On("ADD", benchAdd).Build()
	store, _ := New(cfg.Reduce)
	sink := 0
	for i := 0; i < 10; i++ {
		store.Subscribe(func() { sink += store.State().Count })
	}
	action := Named{Type: "ADD"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Dispatch(action)
	}
	_ = sink
}

// BenchmarkStore_DispatchUnhandled benchmarks the identity path
func BenchmarkStore_DispatchUnhandled(b *testing.B) {
	cfg, _ := NewReducer[BenchState]("bench").On("ADD", benchAdd).Build()
	store, _ := New(cfg.Reduce)
	action := Named{Type: "NOPE"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Dispatch(action)
	}
}

// BenchmarkStore_SubscribeUnsubscribe benchmarks registration churn
func BenchmarkStore_SubscribeUnsubscribe(b *testing.B) {
	store, _ := New(Reducer[BenchState](benchAdd))
	listener := func() {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sub := store.Subscribe(listener)
		sub.Unsubscribe()
	}
}
