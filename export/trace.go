package export

import (
	"reflect"
	"time"

	"github.com/felixgeelhaar/reducekit"
)

// TraceExporter converts a Recorder's history to a TraceDoc
type TraceExporter[S any] struct {
	store    string
	recorder *reducekit.Recorder[S]
}

// NewTraceExporter creates a new exporter for transitions recorded from the named store
func NewTraceExporter[S any](store string, recorder *reducekit.Recorder[S]) *TraceExporter[S] {
	return &TraceExporter[S]{store: store, recorder: recorder}
}

// TraceDoc is the recorded history of one store
type TraceDoc struct {
	Store       string       `json:"store"`
	Transitions []TraceEntry `json:"transitions"`
}

// TraceEntry is one recorded transition
type TraceEntry struct {
	Seq     int       `json:"seq"`
	Action  string    `json:"action"`
	Payload any       `json:"payload,omitempty"`
	Prev    any       `json:"prev"`
	Next    any       `json:"next"`
	At      time.Time `json:"at"`
}

// Export converts the recorded history to a TraceDoc
func (e *TraceExporter[S]) Export() (*TraceDoc, error) {
	transitions := e.recorder.Transitions()
	doc := &TraceDoc{
		Store:       e.store,
		Transitions: make([]TraceEntry, 0, len(transitions)),
	}
	for _, t := range transitions {
		doc.Transitions = append(doc.Transitions, TraceEntry{
			Seq:     t.Seq,
			Action:  string(t.Type),
			Payload: payloadOf(t.Action),
			Prev:    t.Prev,
			Next:    t.Next,
			At:      t.At,
		})
	}
	return doc, nil
}

// Document implements Exporter
func (e *TraceExporter[S]) Document() (any, error) {
	return e.Export()
}

// payloadOf returns the data an action carries, or nil when it carries none
func payloadOf(a reducekit.Action) any {
	if n, ok := a.(reducekit.Named); ok {
		return n.Payload
	}
	if a == nil || reflect.ValueOf(a).IsZero() {
		return nil
	}
	return a
}
