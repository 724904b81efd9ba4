package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oldpence/tally/internal/config"
	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	System     string // denomination system name
	SystemsDir string // optional directory of CUE system definitions
	DBPath     string // ledger database file

	systems *registry.Registry
	table   *dispatch.Table
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Registry returns the denomination systems available to the command.
func (o *RootOptions) Registry() *registry.Registry {
	return o.systems
}

// Table returns the operator dispatch table.
func (o *RootOptions) Table() *dispatch.Table {
	return o.table
}

// ResolveSystem looks up the selected denomination system.
func (o *RootOptions) ResolveSystem() (*money.System, error) {
	return o.systems.Get(o.System)
}

// NewRootCommand creates the root command for the tally CLI.
// Environment variables (TALLY_DB, TALLY_FORMAT, TALLY_SYSTEM,
// TALLY_SYSTEMS) provide flag defaults; explicit flags win.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "tally - a pre-decimal money reckoner",
		Long: `Exact arithmetic, conversion, and bookkeeping for non-decimal
denominated money such as pre-decimal sterling (£ / s / d).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.systems = registry.New()
			if opts.SystemsDir != "" {
				if _, err := opts.systems.LoadDir(opts.SystemsDir); err != nil {
					return fmt.Errorf("loading systems from %s: %w", opts.SystemsDir, err)
				}
			}
			opts.table = dispatch.Default()
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.System, "system", cfg.System, "denomination system")
	cmd.PersistentFlags().StringVar(&opts.SystemsDir, "systems", cfg.SystemsDir, "directory of CUE system definitions")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", cfg.DBPath, "ledger database file")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewLedgerCommand(opts))
	cmd.AddCommand(NewSystemsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
