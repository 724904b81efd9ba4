package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oldpence/tally/internal/ledger"
	"github.com/oldpence/tally/internal/money"
)

// NewLedgerCommand creates the ledger command group.
func NewLedgerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Record and inspect a book of credits and debits",
	}

	cmd.AddCommand(newLedgerAddCommand(rootOpts))
	cmd.AddCommand(newLedgerListCommand(rootOpts))
	cmd.AddCommand(newLedgerBalanceCommand(rootOpts))

	return cmd
}

// LedgerAddOptions holds flags for ledger add.
type LedgerAddOptions struct {
	*RootOptions
	Debit       bool
	Description string
}

func newLedgerAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LedgerAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Append a credit (or, with --debit, a debit) to the book",
		Long: `Append an entry to the book. Debits that would take the running
balance below zero are rejected.

Example:
  tally ledger add --desc wages '£2 10s'
  tally ledger add --debit --desc rent '£1 2s 6d'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerAdd(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Debit, "debit", false, "record a debit instead of a credit")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "entry description")

	return cmd
}

func runLedgerAdd(opts *LedgerAddOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sys, err := opts.ResolveSystem()
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}
	amount, err := money.Parse(sys, input)
	if err != nil {
		return outputFailure(formatter, ExitFailure, err)
	}

	store, err := ledger.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open ledger database", err)
	}
	defer store.Close()

	dir := ledger.DirectionCredit
	if opts.Debit {
		dir = ledger.DirectionDebit
	}
	entry, err := store.Append(cmd.Context(), dir, opts.Description, amount)
	if err != nil {
		return outputFailure(formatter, ExitFailure, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(entry)
	}
	return formatter.Success(fmt.Sprintf("recorded %s of %s", entry.Direction, amount))
}

// LedgerListOptions holds flags for ledger list.
type LedgerListOptions struct {
	*RootOptions
	Limit int
}

func newLedgerListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LedgerListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the book's entries, newest first",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerList(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to show (0 = all)")

	return cmd
}

func runLedgerList(opts *LedgerListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sys, err := opts.ResolveSystem()
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}

	store, err := ledger.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open ledger database", err)
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), sys.Name, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list entries", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}
	if len(entries) == 0 {
		return formatter.Success("no entries")
	}
	var b strings.Builder
	for i, e := range entries {
		amount, err := e.Amount(sys)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to render entry", err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %s  %-6s  %-14s  %s",
			e.Seq, e.CreatedAt.Format(time.DateOnly), e.Direction, amount, e.Description)
	}
	return formatter.Success(b.String())
}

func newLedgerBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "balance",
		Short:         "Show the book's running balance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerBalance(rootOpts, cmd)
		},
	}

	return cmd
}

func runLedgerBalance(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sys, err := opts.ResolveSystem()
	if err != nil {
		return outputFailure(formatter, ExitCommandError, err)
	}

	store, err := ledger.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open ledger database", err)
	}
	defer store.Close()

	balance, err := store.Balance(cmd.Context(), sys)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to compute balance", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{
			"system":  sys.Name,
			"balance": balance.String(),
			"minor":   balance.Minor(),
		})
	}
	return formatter.Success(balance.String())
}

// newFormatter builds the per-command output formatter from global flags.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
