package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/relicense/cmd/relicense/opts"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report what apply would change, without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "status").Logger().WithContext(cmd.Context())

			// Same run as apply, forced dry
			cfg := *o.Config
			cfg.DryRun = true
			dry := *o
			dry.Config = &cfg

			return RunApply(ctx, &dry)
		},
	}

	return cmd
}
