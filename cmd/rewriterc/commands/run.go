// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/enumerate"
	"github.com/walteh/rewriterc/pkg/log"
	"github.com/walteh/rewriterc/pkg/operation"
	"github.com/walteh/rewriterc/pkg/writeback"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun, diff bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite every source file in place",
		Long: `Run applies the catalog to every source file.
It will:
1. Find the source files of every package, sorted
2. Apply the pattern rules, then the literal rules, to each file
3. Overwrite the files whose content changed
4. Print one line per changed file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())
			return migrate(ctx, opts, dryRun, diff)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report files that would change without writing them")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a diff for every changed file")

	return cmd
}

// migrate enumerates the files and runs the migrate operation over them
func migrate(ctx context.Context, opts *opts.RootOpts, dryRun, diff bool) error {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	files, err := enumerate.Files(ctx, opts.Config.Roots(), opts.Config.EnumerateOptions())
	if err != nil {
		return errors.Errorf("enumerating files: %w", err)
	}
	logger.Debug().Str("base", opts.Config.Base).Int("files", len(files)).Msg("enumerated files")

	op := operation.NewMigrateOperation(operation.Options{
		Catalog:  opts.Catalog,
		Writer:   writeback.NewController(dryRun),
		Logger:   console,
		Files:    files,
		ShowDiff: diff,
	})

	if err := operation.NewRunner().Run(ctx, op); err != nil {
		return errors.Errorf("running migration: %w", err)
	}

	summary := op.Summary()
	logger.Info().
		Int("files", summary.Files).
		Int("changed", summary.Changed).
		Int("replacements", summary.Replacements).
		Bool("dry_run", dryRun).
		Msg("migration complete")

	switch {
	case summary.Changed == 0:
	case dryRun:
		console.Warningf("%d of %d files would change", summary.Changed, summary.Files)
	default:
		console.Successf("%d of %d files updated", summary.Changed, summary.Files)
	}

	return nil
}
