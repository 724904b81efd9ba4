package harness

import (
	"errors"
	"fmt"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/expr"
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/registry"
	"github.com/oldpence/tally/internal/value"
)

// StepResult records the outcome of one evaluated step.
type StepResult struct {
	// Expr is the expression source that was evaluated.
	Expr string `json:"expr"`

	// Result is the rendering of the value, when evaluation succeeded.
	Result string `json:"result,omitempty"`

	// Kind is the result value's kind name, when evaluation succeeded.
	Kind string `json:"kind,omitempty"`

	// Error is the structured error code, when evaluation failed.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of running a whole scenario.
type Result struct {
	// Scenario is the scenario that was run.
	Scenario *Scenario

	// System is the resolved denomination system.
	System *money.System

	// Steps holds one result per scenario step, in order.
	Steps []StepResult

	// Failures lists expectation mismatches, one message per failed step.
	Failures []string
}

// Passed reports whether every step expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Run evaluates every step of the scenario. Evaluation errors are
// captured as step results, not returned; Run itself fails only when the
// scenario cannot be set up (unknown system, bad systems directory).
func Run(scenario *Scenario) (*Result, error) {
	systems := registry.New()
	if scenario.SystemsDir != "" {
		if _, err := systems.LoadDir(scenario.SystemsDir); err != nil {
			return nil, fmt.Errorf("loading systems for scenario %q: %w", scenario.Name, err)
		}
	}

	name := scenario.System
	if name == "" {
		name = money.Sterling().Name
	}
	sys, err := systems.Get(name)
	if err != nil {
		return nil, fmt.Errorf("resolving system for scenario %q: %w", scenario.Name, err)
	}

	table := dispatch.Default()
	result := &Result{Scenario: scenario, System: sys}

	for i, step := range scenario.Steps {
		sr := StepResult{Expr: step.Eval}
		v, err := expr.EvalString(sys, table, step.Eval)
		if err != nil {
			sr.Error = errorCode(err)
		} else {
			sr.Result = v.String()
			sr.Kind = v.Kind().String()
		}
		result.Steps = append(result.Steps, sr)

		switch {
		case step.WantError != "" && sr.Error != step.WantError:
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d (%s): want error %s, got %s", i, step.Eval, step.WantError, describeOutcome(sr)))
		case step.Want != "" && sr.Error != "":
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d (%s): want %q, got error %s", i, step.Eval, step.Want, sr.Error))
		case step.Want != "" && sr.Result != step.Want:
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d (%s): want %q, got %q", i, step.Eval, step.Want, sr.Result))
		}
	}
	return result, nil
}

func describeOutcome(sr StepResult) string {
	if sr.Error != "" {
		return sr.Error
	}
	return fmt.Sprintf("%s (%s)", sr.Result, sr.Kind)
}

// errorCode extracts the structured code from an evaluation error.
func errorCode(err error) string {
	if code := money.CodeOf(err); code != "" {
		return string(code)
	}
	var de *dispatch.DispatchError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	var ke *value.KindError
	if errors.As(err, &ke) {
		return "KIND_MISMATCH"
	}
	var pe *expr.ParseError
	if errors.As(err, &pe) {
		return "PARSE_EXPR"
	}
	return "ERROR"
}
