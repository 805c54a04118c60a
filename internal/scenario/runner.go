package scenario

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/reducekit"
)

// StoreFactory creates a fresh store for each scenario
type StoreFactory[S any] func() (*reducekit.Store[S], error)

// ActionParser maps a step name to an action
type ActionParser func(name string) (reducekit.Action, error)

// Runner executes scenarios against stores of state S
type Runner[S any] struct {
	newStore StoreFactory[S]
	parse    ActionParser
	logger   *zap.Logger
	opts     []cmp.Option
}

// Result is the outcome of one scenario
type Result struct {
	Name          string
	Passed        bool
	Diff          string
	Notifications int
}

// Report summarizes a batch of scenarios
type Report struct {
	Results []Result
}

// Passed reports whether every scenario passed
func (r Report) Passed() bool {
	return r.Failed() == 0
}

// Failed returns the number of failed scenarios
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// NewRunner creates a runner. A nil logger discards narration. Extra cmp
// options tune the state comparison.
func NewRunner[S any](newStore StoreFactory[S], parse ActionParser, logger *zap.Logger, opts ...cmp.Option) *Runner[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner[S]{
		newStore: newStore,
		parse:    parse,
		logger:   logger,
		opts:     opts,
	}
}

// Run executes one scenario on a fresh store. The returned error reports
// a broken scenario (unknown action, undecodable expectation, reducer
// failure); a state mismatch is a failed Result, not an error.
func (r *Runner[S]) Run(sc Scenario) (Result, error) {
	res := Result{Name: sc.Name}
	log := r.logger.With(zap.String("scenario", sc.Name))

	store, err := r.newStore()
	if err != nil {
		return res, fmt.Errorf("%s: create store: %w", sc.Name, err)
	}

	var want S
	if err := sc.Then.Decode(&want); err != nil {
		return res, fmt.Errorf("%s: decode then: %w", sc.Name, err)
	}

	log.Info("given", zap.Strings("actions", sc.Given))
	if err := r.dispatchAll(store, sc.Given); err != nil {
		return res, fmt.Errorf("%s: given: %w", sc.Name, err)
	}

	sub := store.Subscribe(func() {
		res.Notifications++
		log.Info("state changed", zap.Any("state", store.State()))
	})
	defer sub.Unsubscribe()

	log.Info("when", zap.Strings("actions", sc.When))
	if err := r.dispatchAll(store, sc.When); err != nil {
		return res, fmt.Errorf("%s: when: %w", sc.Name, err)
	}

	res.Diff = cmp.Diff(want, store.State(), r.opts...)
	res.Passed = res.Diff == ""
	if res.Passed {
		log.Info("then", zap.Any("state", store.State()), zap.Bool("passed", true))
	} else {
		log.Warn("then", zap.Any("state", store.State()), zap.Bool("passed", false), zap.String("diff", res.Diff))
	}
	return res, nil
}

// RunAll executes scenarios in order and stops at the first broken one
func (r *Runner[S]) RunAll(scs []Scenario) (Report, error) {
	var report Report
	for _, sc := range scs {
		res, err := r.Run(sc)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (r *Runner[S]) dispatchAll(store *reducekit.Store[S], names []string) error {
	for _, name := range names {
		action, err := r.parse(name)
		if err != nil {
			return err
		}
		if err := store.Dispatch(action); err != nil {
			return err
		}
	}
	return nil
}
