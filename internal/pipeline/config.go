// Package pipeline evaluates integer sequence pipelines described in YAML.
//
// A pipeline names a source, a list of operators applied left to right and a
// terminal operation:
//
//	source:
//	  kind: range
//	  from: 0
//	  to: 10
//	ops:
//	  - op: drop
//	    n: 3
//	  - op: take
//	    n: 2
//	terminal: collect
//
// The any and all terminals test the predicate given under where:
//
//	terminal: any
//	where:
//	  pred: even
package pipeline

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultLimit caps how many elements eager terminals consume, so an
// infinite pipeline still terminates.
const DefaultLimit = 10_000

// Config is the YAML form of a pipeline.
type Config struct {
	Source   Source     `yaml:"source"`
	Ops      []Op       `yaml:"ops"`
	Terminal string     `yaml:"terminal"`
	Where    *Predicate `yaml:"where"`
	Limit    int        `yaml:"limit"`
}

// Source selects the constructor feeding the pipeline.
//
//	range:   from, to, step (step defaults to 1)
//	values:  values
//	repeat:  value
//	iterate: from, step (from, from+step, ...)
type Source struct {
	Kind   string `yaml:"kind"`
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Step   *int   `yaml:"step"`
	Values []int  `yaml:"values"`
	Value  int    `yaml:"value"`
}

// Predicate names an integer test: a threshold (below or above, checked
// first) or one of even, odd, positive, negative, zero.
type Predicate struct {
	Pred  string `yaml:"pred"`
	Below *int   `yaml:"below"`
	Above *int   `yaml:"above"`
}

// Op is one operator of the pipeline. Which fields matter depends on Op:
//
//	take, drop:                    n
//	takeWhere, rejectAll,
//	takeWhile, dropWhile:          pred, or below / above (see Predicate)
//	map:                           mul, add (x*mul + add, mul defaults to 1)
//	cons, snoc:                    value
//	append:                        values
//	cycle, reverse:                no field
type Op struct {
	Op     string `yaml:"op"`
	N      int    `yaml:"n"`
	Pred   string `yaml:"pred"`
	Below  *int   `yaml:"below"`
	Above  *int   `yaml:"above"`
	Mul    *int   `yaml:"mul"`
	Add    int    `yaml:"add"`
	Value  int    `yaml:"value"`
	Values []int  `yaml:"values"`
}

// Parse decodes a pipeline from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode pipeline: %w", err)
	}
	if cfg.Terminal == "" {
		cfg.Terminal = "collect"
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return cfg, nil
}

// Load reads and parses the pipeline file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline: %w", err)
	}
	return Parse(data)
}
