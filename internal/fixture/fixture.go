// Package fixture loads YAML-described graph-construction scenarios for
// table-driven tests, the same role nornicdb's apoc/config.go and
// LederWorks' internal/config loader play for their own YAML inputs,
// adapted here from runtime configuration to test data.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ChildSpec describes one composition child to add under a type. Type and
// MakeChild both name the child's type; Build places a MakeChild template
// for either form, using MakeChild when both are set.
type ChildSpec struct {
	Identifier string `yaml:"identifier"`
	Type       string `yaml:"type"`
	MakeChild  string `yaml:"make_child"`
}

// LinkSpec describes a MakeLink template: two dotted reference paths,
// relative to the instance root, and the kind of edge to wire between
// whatever they resolve to.
type LinkSpec struct {
	LHS  []string `yaml:"lhs"`
	RHS  []string `yaml:"rhs"`
	Kind string   `yaml:"kind"`
}

// TypeSpec describes one registered type.
type TypeSpec struct {
	Name     string      `yaml:"name"`
	Trait    bool        `yaml:"trait"`
	Children []ChildSpec `yaml:"children"`
	Links    []LinkSpec  `yaml:"links"`
}

// ExpectSpec describes assertions a test makes against the instantiated
// result. Fields are optional; zero value means "don't check".
type ExpectSpec struct {
	ChildCount  int      `yaml:"child_count"`
	ChildNames  []string `yaml:"child_names"`
	ErrContains string   `yaml:"err_contains"`
}

// Scenario is one end-to-end graph-construction test case.
type Scenario struct {
	Name        string     `yaml:"name"`
	Types       []TypeSpec `yaml:"types"`
	Instantiate string     `yaml:"instantiate"`
	Expect      ExpectSpec `yaml:"expect"`
}

// Load parses a single scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return &s, nil
}

// LoadDir parses every *.yaml file in dir, sorted by filename for
// deterministic test ordering.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
