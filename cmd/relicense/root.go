package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/relicense/cmd/relicense/opts"
	"github.com/walteh/relicense/pkg/config"
	"github.com/walteh/relicense/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	rootDir    string
	preset     string
	dryRun     bool
)

// initRootOpts fills the shared options once flags have been parsed
func initRootOpts(ctx context.Context, o *opts.RootOpts) error {
	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Apply flag overrides
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if preset != "" {
		cfg.Preset = preset
		cfg.Headers = nil
	}
	if dryRun {
		cfg.DryRun = true
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	o.Config = cfg
	o.StatusMgr = status.NewManager(logger)
	o.UserLogger = status.NewUserLogger(ctx)
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "override root directory")
	cmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "override header preset (agpl-to-mit, mit-to-agpl)")
	cmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "classify and report without writing")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// TODO(dr.methodical): 🧪 Add tests for flag overrides
// TODO(dr.methodical): 📝 Add examples of flag usage
