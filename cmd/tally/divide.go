package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/reducekit"
	"github.com/felixgeelhaar/reducekit/examples/division"
)

func (a *app) divideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide <dividend> <divider>",
		Short: "Submit the division form",
		Long: `Submits both values to a fresh division form and prints the floored
quotient or the rejection message. A value that is not a number is a
critical failure and exits with an error.

Pass negative values after "--" so they are not read as flags:
  tally divide -- -6 2`,
		Args: cobra.ExactArgs(2),
		RunE: a.runDivide,
	}
}

func (a *app) runDivide(cmd *cobra.Command, args []string) error {
	store, err := division.NewStore(reducekit.WithLogger(a.logger))
	if err != nil {
		return err
	}

	if err := store.Dispatch(division.Submit{Dividend: args[0], Divider: args[1]}); err != nil {
		return err
	}

	s := store.State()
	a.logger.Debug("division submitted", zap.Stringer("outcome", s.Outcome))
	if division.Critical(s) {
		return errors.New(s.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.Message)
	return nil
}
