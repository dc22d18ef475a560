package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/commands"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

const (
	envConfig = "REWRITERC_CONFIG"
	envBase   = "REWRITERC_BASE"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	base       string
	debug      bool
}

// NewRootCmd creates the rewriterc command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "rewriterc",
		Short: "Rewrite generated client sources with an ordered rule catalog",
		Long: `rewriterc migrates a tree of generated client sources in place.
Every file is rewritten by the pattern rules of the catalog, then by its literal
rules, and written back only if its content changed. Running it again over an
already migrated tree changes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)
			cmd.SetContext(ctx)

			loaded, err := newRootOpts(ctx, flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			*rootOpts = *loaded
			cmd.SetContext(log.NewContext(ctx, loaded.Console))
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the catalog and compiles it, so a bad pattern fails before any file is read
func newRootOpts(ctx context.Context, flags *rootFlags, console io.Writer) (*opts.RootOpts, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if flags.base != "" {
		cfg.Base = filepath.Clean(flags.base)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, errors.Errorf("loading catalog: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.Location()).
		Str("base", cfg.Base).
		Str("mode", string(catalog.Mode())).
		Int("rules", catalog.Len()).
		Msg("catalog ready")

	return &opts.RootOpts{
		Config:  cfg,
		Catalog: catalog,
		Console: log.New(console, *zerolog.Ctx(ctx)),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", os.Getenv(envConfig), "catalog file (.hcl, .yaml, .json); empty uses the shipped catalog")
	cmd.PersistentFlags().StringVarP(&flags.base, "base", "b", os.Getenv(envBase), "directory holding the client packages")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
