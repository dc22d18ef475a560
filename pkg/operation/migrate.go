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

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/log"
	"github.com/walteh/rewriterc/pkg/text"
	"github.com/walteh/rewriterc/pkg/writeback"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by a Runner
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for a migrate operation
type Options struct {
	// Catalog holds the compiled rules
	Catalog *text.Catalog
	// Writer decides whether rewritten content is persisted
	Writer *writeback.Controller
	// Logger reports changed files to the operator
	Logger *log.Logger
	// Files is the enumerated list of files, processed in order
	Files []string
	// ShowDiff prints a diff for every changed file
	ShowDiff bool
}

// 📊 Summary counts what a migrate operation did
type Summary struct {
	Files        int
	Changed      int
	Replacements int
	ChangedPaths []string
}

// 📦 MigrateOperation rewrites every file with the catalog
type MigrateOperation struct {
	opts    Options
	summary Summary
}

// 📦 NewMigrateOperation creates a new migrate operation
func NewMigrateOperation(opts Options) *MigrateOperation {
	return &MigrateOperation{opts: opts}
}

// Name implements Operation
func (op *MigrateOperation) Name() string {
	return "migrate"
}

// Summary returns the counts collected by Execute
func (op *MigrateOperation) Summary() Summary {
	return op.summary
}

// 🏃 Execute runs the migrate operation
func (op *MigrateOperation) Execute(ctx context.Context) error {
	if op.opts.Catalog == nil {
		return errors.Errorf("catalog is required")
	}
	if op.opts.Writer == nil {
		return errors.Errorf("writer is required")
	}
	if op.opts.Logger == nil {
		return errors.Errorf("logger is required")
	}

	op.summary = Summary{}
	for _, file := range op.opts.Files {
		if err := op.processFile(ctx, file); err != nil {
			return errors.Errorf("processing file %s: %w", file, err)
		}
		op.summary.Files++
	}

	return nil
}

// 📄 processFile processes a single file
func (op *MigrateOperation) processFile(ctx context.Context, file string) error {
	logger := zerolog.Ctx(ctx).With().Str("file", file).Logger()

	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}
	original := string(data)

	result := op.opts.Catalog.Rewrite(original)

	outcome, err := op.opts.Writer.MaybeWrite(ctx, file, original, result.ModifiedContent)
	if err != nil {
		return errors.Errorf("writing back: %w", err)
	}

	logger.Trace().Stringer("outcome", outcome).Strs("rules", result.Applied).Msg("file processed")

	if outcome == writeback.Unchanged {
		return nil
	}

	op.summary.Changed++
	op.summary.Replacements += result.ReplacementCount
	op.summary.ChangedPaths = append(op.summary.ChangedPaths, file)

	op.opts.Logger.LogFileOperation(ctx, log.FileOperation{
		Path:         file,
		Status:       outcome.String(),
		IsPending:    outcome == writeback.Pending,
		Replacements: result.ReplacementCount,
		Rules:        result.Applied,
	})

	if op.opts.ShowDiff {
		op.opts.Logger.Raw(writeback.Diff(original, result.ModifiedContent))
	}

	return nil
}
