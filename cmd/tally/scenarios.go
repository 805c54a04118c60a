package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/reducekit"
	"github.com/felixgeelhaar/reducekit/examples/counter"
	"github.com/felixgeelhaar/reducekit/internal/scenario"
)

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [file.yaml...]",
		Short: "Run the counter scenarios",
		Long: `Runs the built-in tally counter scenarios, then every *.yaml file in
the configured scenarios directory, then the files given as arguments.

Each scenario runs on a fresh store. The command fails when any scenario
does not reach its expected state.`,
		RunE: a.runScenarios,
	}
}

func (a *app) runScenarios(cmd *cobra.Command, args []string) error {
	scs := scenario.Builtin()

	files := args
	if a.cfg.Scenarios.Dir != "" {
		matches, err := filepath.Glob(filepath.Join(a.cfg.Scenarios.Dir, "*.yaml"))
		if err != nil {
			return fmt.Errorf("scan scenarios dir: %w", err)
		}
		files = append(matches, files...)
	}

	for _, path := range files {
		loaded, err := loadScenarioFile(path)
		if err != nil {
			return err
		}
		scs = append(scs, loaded...)
	}

	runner := scenario.NewRunner(func() (*reducekit.Store[counter.State], error) {
		return counter.NewStore(reducekit.WithLogger(a.logger))
	}, counter.ParseAction, a.logger)

	report, err := runner.RunAll(scs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		if res.Passed {
			fmt.Fprintf(out, "PASS  %s\n", res.Name)
			continue
		}
		fmt.Fprintf(out, "FAIL  %s\n%s", res.Name, res.Diff)
	}
	failed := report.Failed()
	fmt.Fprintf(out, "%d passed, %d failed\n", len(report.Results)-failed, failed)

	if !report.Passed() {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}

func loadScenarioFile(path string) ([]scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenarios: %w", err)
	}
	defer func() { _ = f.Close() }()

	scs, err := scenario.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scs, nil
}
