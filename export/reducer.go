// Package export provides exporters for converting reducer tables and
// recorded store traces to JSON documents.
package export

import (
	"github.com/felixgeelhaar/reducekit/internal/ir"
)

// ReducerExporter converts a ReducerConfig to a ReducerDoc.
// The document lists the handled action types in registration order
// together with the state produced for the init action.
type ReducerExporter[S any] struct {
	reducer *ir.ReducerConfig[S]
}

// NewReducerExporter creates a new exporter for the given reducer configuration
func NewReducerExporter[S any](reducer *ir.ReducerConfig[S]) *ReducerExporter[S] {
	return &ReducerExporter[S]{reducer: reducer}
}

// ReducerDoc describes a handler-table reducer
type ReducerDoc struct {
	ID      string   `json:"id"`
	Initial any      `json:"initial"`
	Actions []string `json:"actions"`
}

// Export converts the reducer configuration to a ReducerDoc
func (e *ReducerExporter[S]) Export() (*ReducerDoc, error) {
	doc := &ReducerDoc{
		ID:      e.reducer.ID,
		Initial: e.reducer.Initial,
		Actions: make([]string, 0, len(e.reducer.Handlers)),
	}
	for _, t := range e.reducer.ActionTypes() {
		doc.Actions = append(doc.Actions, string(t))
	}
	return doc, nil
}

// Document implements Exporter
func (e *ReducerExporter[S]) Document() (any, error) {
	return e.Export()
}
