package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// snapshot is the stable JSON shape compared against golden files.
type snapshot struct {
	Scenario string       `json:"scenario"`
	System   string       `json:"system"`
	Steps    []StepResult `json:"steps"`
}

// RunWithGolden runs a scenario file and compares the step-by-step
// results against testdata/golden/<name>.golden. Pass -update to
// regenerate the golden files.
func RunWithGolden(t *testing.T, scenarioPath string) *Result {
	t.Helper()

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("loading scenario: %v", err)
	}

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("running scenario %q: %v", scenario.Name, err)
	}

	snap := snapshot{
		Scenario: scenario.Name,
		System:   result.System.Name,
		Steps:    result.Steps,
	}
	data, err := marshalSnapshot(snap)
	if err != nil {
		t.Fatalf("marshaling snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result
}

// marshalSnapshot renders the snapshot as indented JSON without HTML
// escaping, so comparison operators stay readable in golden files.
func marshalSnapshot(snap snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
