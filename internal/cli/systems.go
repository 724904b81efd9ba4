package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/registry"
)

// NewSystemsCommand creates the systems command group.
func NewSystemsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Inspect and validate denomination systems",
	}

	cmd.AddCommand(newSystemsListCommand(rootOpts))
	cmd.AddCommand(newSystemsValidateCommand(rootOpts))

	return cmd
}

func newSystemsListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the known denomination systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystemsList(rootOpts, cmd)
		},
	}

	return cmd
}

func runSystemsList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	names := opts.Registry().Names()
	if formatter.Format == "json" {
		type systemDoc struct {
			Name  string   `json:"name"`
			Units []string `json:"units"`
		}
		docs := make([]systemDoc, 0, len(names))
		for _, name := range names {
			sys, err := opts.Registry().Get(name)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to look up system", err)
			}
			units := make([]string, len(sys.Units))
			for i, u := range sys.Units {
				units[i] = u.Name
			}
			docs = append(docs, systemDoc{Name: name, Units: units})
		}
		return formatter.Success(docs)
	}

	var b strings.Builder
	for i, name := range names {
		sys, err := opts.Registry().Get(name)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to look up system", err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-14s %s", name, describeUnits(sys.Units))
	}
	return formatter.Success(b.String())
}

// describeUnits renders a unit chain like "pound = 20 shilling = 12 penny".
func describeUnits(units []money.Unit) string {
	var parts []string
	for i, u := range units {
		if i == 0 {
			parts = append(parts, u.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", u.Count, u.Name))
	}
	return strings.Join(parts, " = ")
}

// ValidationResult holds systems validate results.
type ValidationResult struct {
	Valid   bool                       `json:"valid"`
	Systems []string                   `json:"systems,omitempty"`
	Errors  []registry.ValidationError `json:"errors,omitempty"`
}

func newSystemsValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <systems-dir>",
		Short: "Validate CUE system definitions without registering them",
		Long: `Validate a directory of CUE denomination system definitions.

Checks structure and consistency: carry bases of at least 2, unique
symbols and names, at least two units per system.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystemsValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSystemsValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	names, validationErrors, err := registry.ValidateDir(dir)
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}
	formatter.VerboseLog("Found %d system(s) in %s", len(names), dir)

	if len(validationErrors) > 0 {
		if formatter.Format == "json" {
			if err := formatter.Success(ValidationResult{Valid: false, Errors: validationErrors}); err != nil {
				return err
			}
		} else {
			var b strings.Builder
			fmt.Fprintf(&b, "%d validation error(s):", len(validationErrors))
			for _, ve := range validationErrors {
				fmt.Fprintf(&b, "\n  %s", ve.Error())
			}
			if err := formatter.Success(b.String()); err != nil {
				return err
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(validationErrors)))
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Systems: names})
	}
	return formatter.Success(fmt.Sprintf("%d system(s) valid: %s", len(names), strings.Join(names, ", ")))
}
