package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/reducekit"
	"github.com/felixgeelhaar/reducekit/examples/counter"
)

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [ACTION...]",
		Short: "Dispatch actions to a tally counter",
		Long: `Creates a counter store starting at zero and dispatches each action in
order. A subscriber prints the count after every dispatch.

Actions: ADD, SUBTRACT, RESET (case-insensitive).

Example:
  tally count add add subtract`,
		RunE: a.runCount,
	}
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	actions, err := parseCounterActions(args)
	if err != nil {
		return err
	}

	store, err := counter.NewStore(reducekit.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(actions) == 0 {
		printCount(out, store.State())
		return nil
	}

	sub := store.Subscribe(func() {
		printCount(out, store.State())
	})
	defer sub.Unsubscribe()

	for _, action := range actions {
		if err := store.Dispatch(action); err != nil {
			return err
		}
	}
	return nil
}

// parseCounterActions resolves every name before anything is dispatched
func parseCounterActions(names []string) ([]reducekit.Action, error) {
	actions := make([]reducekit.Action, 0, len(names))
	for _, name := range names {
		action, err := counter.ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func printCount(w io.Writer, s counter.State) {
	fmt.Fprintf(w, "Current count: %d\n", s.Count)
}
