package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oldpence/tally/internal/money"
)

// ConversionResult is the JSON payload for the convert command.
type ConversionResult struct {
	Input      string  `json:"input"`
	Normalized string  `json:"normalized"`
	System     string  `json:"system"`
	Minor      int64   `json:"minor"`
	MinorUnit  string  `json:"minor_unit"`
	Split      []int64 `json:"split"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Normalize an amount and show its minor-unit total",
		Long: `Parse an amount, normalize it by carrying overflowing fields into the
next higher unit, and show the total in the system's smallest unit.

Example:
  tally convert '25s 14d'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, strings.Join(args, " "), cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sys, err := opts.ResolveSystem()
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}

	a, err := money.Parse(sys, input)
	if err != nil {
		return outputFailure(formatter, ExitFailure, err)
	}

	result := ConversionResult{
		Input:      input,
		Normalized: a.String(),
		System:     sys.Name,
		Minor:      a.Minor(),
		MinorUnit:  sys.Smallest().Name,
		Split:      a.Split(),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("%s = %d %s", result.Normalized, result.Minor, plural(result.MinorUnit, result.Minor)))
}

// plural naively pluralizes a unit name for text output: penny/pennies is
// irregular, everything else takes an s.
func plural(name string, n int64) string {
	if n == 1 {
		return name
	}
	if strings.HasSuffix(name, "y") {
		return strings.TrimSuffix(name, "y") + "ies"
	}
	return name + "s"
}
