package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Exporter is implemented by ReducerExporter and TraceExporter.
type Exporter interface {
	Document() (any, error)
}

// ExportOptions configures the export behavior.
type ExportOptions struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// Indent is the string used for indentation (default: "  ")
	Indent string

	// Output is where JSON will be written (default: os.Stdout)
	Output io.Writer

	// Name filters WriteAll to a single exporter (empty = export all)
	Name string
}

// DefaultExportOptions returns options with sensible defaults.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		PrettyPrint: false,
		Indent:      "  ",
		Output:      os.Stdout,
		Name:        "",
	}
}

// Write exports a single document to JSON.
func Write(exporter Exporter, opts ExportOptions) error {
	doc, err := exporter.Document()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	return writeJSON(doc, opts)
}

// WriteAll exports multiple documents to JSON.
// The output is a JSON object keyed by exporter name.
func WriteAll(exporters map[string]Exporter, opts ExportOptions) error {
	if opts.Name != "" {
		exporter, ok := exporters[opts.Name]
		if !ok {
			return fmt.Errorf("export %q not found", opts.Name)
		}
		return Write(exporter, opts)
	}

	result := make(map[string]any, len(exporters))
	for name, exporter := range exporters {
		doc, err := exporter.Document()
		if err != nil {
			return fmt.Errorf("export %q failed: %w", name, err)
		}
		result[name] = doc
	}

	return writeJSON(result, opts)
}

// Names returns the exporter names in sorted order.
func Names(exporters map[string]Exporter) []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeJSON writes a value as JSON to the configured output.
func writeJSON(v any, opts ExportOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var data []byte
	var err error

	if opts.PrettyPrint {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("JSON marshal failed: %w", err)
	}

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	// Add trailing newline for terminal output
	if _, err := out.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline failed: %w", err)
	}

	return nil
}
