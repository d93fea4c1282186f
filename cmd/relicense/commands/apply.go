package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/relicense/cmd/relicense/opts"
	"github.com/walteh/relicense/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Rewrite license headers in place",
		Long: `Apply rewrites license headers across the configured tree.
It will:
1. Scan the root for files matching the configured extensions
2. Replace recognized old headers with the target header
3. Add the target header to files that have none
4. Skip files carrying an unrecognized copyright notice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())
			return RunApply(ctx, o)
		},
	}

	return cmd
}

// RunApply executes the rewrite and reports a non-nil error when any
// per-file error was counted, so the process exits non-zero.
func RunApply(ctx context.Context, o *opts.RootOpts) error {
	op, err := operation.NewRewriteOperation(operation.Options{
		Config:     o.Config,
		StatusMgr:  o.StatusMgr,
		UserLogger: o.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating rewrite operation: %w", err)
	}

	runner := operation.NewRunner(zerolog.Ctx(ctx), o.Config.Async)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running rewrite: %w", err)
	}

	if s := o.StatusMgr.Summary(); s.Errors > 0 {
		return errors.Errorf("%d files could not be processed", s.Errors)
	}
	return nil
}
