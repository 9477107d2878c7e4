// Package cli implements the ottobar command line.
package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	LogFile    string // "" keeps the config value, "stderr" logs to the console
	Sim        bool
	NoChime    bool

	// sleep replaces the engine's blocking wait; nil uses time.Sleep.
	sleep func(time.Duration)
}

// NewRootCommand creates the root command for the ottobar CLI. Running it
// without a subcommand starts the terminal UI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ottobar",
		Short: "ottobar - pump relay drink dispenser",
		Long: `ottobar pours drinks by running one pump per ingredient for a time
proportional to its volume (100 ml per second).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose && opts.Quiet {
				return errors.New("--verbose and --quiet are mutually exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ottobar.yaml or $OTTOBAR_CONFIG)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose/debug logging")
	pf.BoolVarP(&opts.Quiet, "quiet", "q", false, "disable all logging")
	pf.StringVar(&opts.LogFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	pf.BoolVar(&opts.Sim, "sim", false, "drive simulated lines instead of GPIO")
	pf.BoolVar(&opts.NoChime, "no-chime", false, "disable the completion chime")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewRecipesCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}
