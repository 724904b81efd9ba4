package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of expression evaluations against one
// denomination system.
type Scenario struct {
	// Name identifies the scenario (and its golden file).
	Name string `yaml:"name"`

	// Description is a human-readable summary.
	Description string `yaml:"description,omitempty"`

	// System names the denomination system to evaluate against.
	// Defaults to "sterling".
	System string `yaml:"system,omitempty"`

	// SystemsDir optionally points at a directory of CUE system
	// definitions to load before resolving System. Relative paths are
	// resolved against the scenario file's directory.
	SystemsDir string `yaml:"systems_dir,omitempty"`

	// Steps are evaluated in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single expression with an optional expectation.
type Step struct {
	// Eval is the expression source.
	Eval string `yaml:"eval"`

	// Want is the expected rendering of the result, if set.
	Want string `yaml:"want,omitempty"`

	// WantError is the expected error code, if set.
	WantError string `yaml:"want_error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly, and a relative systems_dir is resolved
// against the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.SystemsDir != "" && !filepath.IsAbs(scenario.SystemsDir) {
		scenario.SystemsDir = filepath.Join(filepath.Dir(path), scenario.SystemsDir)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i, step := range s.Steps {
		if step.Eval == "" {
			return fmt.Errorf("step %d: missing required field: eval", i)
		}
		if step.Want != "" && step.WantError != "" {
			return fmt.Errorf("step %d: want and want_error are mutually exclusive", i)
		}
	}
	return nil
}
