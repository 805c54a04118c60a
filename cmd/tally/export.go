package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/reducekit"
	"github.com/felixgeelhaar/reducekit/examples/counter"
	"github.com/felixgeelhaar/reducekit/export"
)

type exportOptions struct {
	pretty  bool
	output  string
	actions []string
}

func (a *app) exportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [reducer|trace]",
		Short: "Export the counter as JSON",
		Long: `Exports the counter's handler table ("reducer") or the recorded
transitions of a counter store ("trace"). Without a name both documents are
written as one object keyed by name.

Example:
  tally export trace --actions add,add,reset --pretty`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"reducer", "trace"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringSliceVar(&opts.actions, "actions", nil, "counter actions to dispatch before exporting the trace")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	cfg, err := counter.NewReducer()
	if err != nil {
		return err
	}

	actions, err := parseCounterActions(opts.actions)
	if err != nil {
		return err
	}

	rec := reducekit.NewRecorder[counter.State](0)
	store, err := reducekit.New(cfg.Reduce,
		reducekit.WithID(cfg.ID),
		reducekit.WithLogger(a.logger),
		reducekit.WithTracer[counter.State](rec),
	)
	if err != nil {
		return err
	}
	for _, action := range actions {
		if err := store.Dispatch(action); err != nil {
			return err
		}
	}

	exporters := map[string]export.Exporter{
		"reducer": export.NewReducerExporter(cfg),
		"trace":   export.NewTraceExporter(store.ID(), rec),
	}

	writeOpts := export.DefaultExportOptions()
	writeOpts.PrettyPrint = opts.pretty
	writeOpts.Output = cmd.OutOrStdout()
	if len(args) == 1 {
		writeOpts.Name = args[0]
	}

	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		writeOpts.Output = f
	}

	a.logger.Debug("exporting",
		zap.Strings("documents", export.Names(exporters)),
		zap.String("name", writeOpts.Name),
		zap.Int("transitions", rec.Len()))
	return export.WriteAll(exporters, writeOpts)
}
