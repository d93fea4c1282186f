package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/relicense/cmd/relicense/commands"
	"github.com/walteh/relicense/cmd/relicense/opts"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	rootOpts := &opts.RootOpts{}

	// Create root command. Running with no arguments applies the
	// configured rewrite, so a bare invocation works out of the box.
	rootCmd := &cobra.Command{
		Use:   "relicense",
		Short: "Rewrite license headers across a source tree",
		Long: `relicense toggles license header comments between an MIT-style and an
AGPL-style block across a tree of source files, replacing recognized old
headers and adding the target header where none exists.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return initRootOpts(cmd.Context(), rootOpts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunApply(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
