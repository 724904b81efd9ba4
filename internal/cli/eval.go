package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oldpence/tally/internal/expr"
	"github.com/oldpence/tally/internal/value"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a money expression",
		Long: `Evaluate a money expression in the selected denomination system.

Operators are resolved on the runtime kinds of both operands: money adds
to money, integers scale money, comparisons yield booleans.

Example:
  tally eval '£1 4s 6d + 2 * 10s'
  tally eval '£10 / 2s 6d'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Allow the expression to arrive shell-split.
			return runEval(rootOpts, strings.Join(args, " "), cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, src string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sys, err := opts.ResolveSystem()
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}
	formatter.VerboseLog("Evaluating %q in system %s", src, sys.Name)

	result, err := expr.EvalString(sys, opts.Table(), src)
	if err != nil {
		return outputFailure(formatter, ExitFailure, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(value.JSON(result))
	}
	return formatter.Success(result.String())
}
