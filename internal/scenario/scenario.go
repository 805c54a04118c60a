// Package scenario runs Given/When/Then scripts, written in YAML, against
// fresh stores.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Scenario is one script: actions that establish a baseline, actions under
// test, and the expected final state.
type Scenario struct {
	Name  string    `yaml:"name"`
	Given []string  `yaml:"given,omitempty"`
	When  []string  `yaml:"when,omitempty"`
	Then  yaml.Node `yaml:"then"`
}

// Load reads scenarios from YAML. Each document may hold a single scenario
// or a list of them.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)

	var out []Scenario
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse scenarios: %w", err)
		}

		node := &doc
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			node = node.Content[0]
		}

		switch node.Kind {
		case yaml.SequenceNode:
			var list []Scenario
			if err := node.Decode(&list); err != nil {
				return nil, fmt.Errorf("decode scenario list: %w", err)
			}
			out = append(out, list...)
		case yaml.MappingNode:
			var sc Scenario
			if err := node.Decode(&sc); err != nil {
				return nil, fmt.Errorf("decode scenario: %w", err)
			}
			out = append(out, sc)
		default:
			return nil, fmt.Errorf("parse scenarios: line %d: expected a mapping or a list", node.Line)
		}
	}

	for i, sc := range out {
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}
	return out, nil
}

// Builtin returns the narrated tally counter scenarios
func Builtin() []Scenario {
	scs, err := Load(bytes.NewReader(builtinYAML))
	if err != nil {
		panic(fmt.Sprintf("scenario: builtin scenarios are invalid: %v", err))
	}
	return scs
}

// Validate checks that a scenario has a name and an expectation
func (s Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Then.Kind == 0 {
		return fmt.Errorf("%q: then is required", s.Name)
	}
	return nil
}
