// Package cli implements the eve-navigator command-line interface.
//
// The commands answer wayfinding and proximity questions over a universe
// loaded from a SQLite static dump:
//
//   - route: cheapest route between two systems under the active rules
//   - jumps: all systems within a jump radius
//   - near: all systems within a lightyear radius, gates or not
//   - search: resolve partial system names
//   - info: details and connections of one system
//
// All commands support --verbose (-v) for debug-level logging; the logger is
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// Execute runs the eve-navigator CLI and returns an error if any command
// fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
		dumpPath   string
	)

	root := &cobra.Command{
		Use:          "eve-navigator",
		Short:        "eve-navigator answers wayfinding questions over the EVE universe",
		Long:         `eve-navigator loads the EVE Online map from a SQLite static dump and answers routing, jump-radius and spatial-range queries over it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("eve-navigator %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "eve-navigator.yaml", "config file")
	root.PersistentFlags().StringVar(&dumpPath, "dump", "", "SQLite static dump (overrides config)")

	opts := &options{configPath: &configPath, dumpPath: &dumpPath}
	root.AddCommand(newRouteCmd(opts))
	root.AddCommand(newJumpsCmd(opts))
	root.AddCommand(newNearCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newInfoCmd(opts))

	return root.ExecuteContext(context.Background())
}

// options carries the persistent flag values into subcommands.
type options struct {
	configPath *string
	dumpPath   *string
}
