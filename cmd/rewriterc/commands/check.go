package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var diff bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "List the files a run would change",
		Long: `Check rewrites every source file in memory and lists the files whose
content would change, without writing anything. The exit code only reflects
failures, not whether files would change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())
			return migrate(ctx, opts, true, diff)
		},
	}

	cmd.Flags().BoolVar(&diff, "diff", false, "print a diff for every file that would change")

	return cmd
}
