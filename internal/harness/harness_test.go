package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios runs the canonical reckoning scenarios and snapshots
// their step-by-step results against golden files.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		system string
	}{
		{name: "sterling_reckoning", system: "sterling"},
		{name: "sterling_failures", system: "sterling"},
		{name: "farthing_reckoning", system: "farthingland"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join("testdata", "scenarios", tt.name+".yaml")
			result := RunWithGolden(t, path)

			assert.Equal(t, tt.name, result.Scenario.Name)
			assert.Equal(t, tt.system, result.System.Name)
			assert.Empty(t, result.Failures, "all step expectations should hold")
			assert.True(t, result.Passed())
		})
	}
}

func TestRunReportsExpectationMismatch(t *testing.T) {
	scenario := &Scenario{
		Name: "mismatch",
		Steps: []Step{
			{Eval: "1s + 6d", Want: "2s"},
			{Eval: "1s + 6d", WantError: "UNDERFLOW"},
			{Eval: "2s 6d - £1", Want: "1s"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Failures, 3)
	assert.False(t, result.Passed())
	assert.Contains(t, result.Failures[0], `want "2s", got "1s 6d"`)
	assert.Contains(t, result.Failures[1], "want error UNDERFLOW")
	assert.Contains(t, result.Failures[2], "got error UNDERFLOW")
}

func TestRunUnknownSystem(t *testing.T) {
	scenario := &Scenario{
		Name:   "unknown",
		System: "groats",
		Steps:  []Step{{Eval: "1 + 1"}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groats")
}
