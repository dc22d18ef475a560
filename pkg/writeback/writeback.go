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

package writeback

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
)

// Outcome reports what MaybeWrite did with a file
type Outcome int

const (
	// Unchanged means the content was identical and the file was not touched
	Unchanged Outcome = iota
	// Written means the file was overwritten with new content
	Written
	// Pending means the content differs but the controller is in dry-run mode
	Pending
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Written:
		return "written"
	case Pending:
		return "pending"
	}
	return "unknown"
}

// Controller decides whether a file is rewritten
type Controller struct {
	// DryRun reports changes without writing them
	DryRun bool
}

// NewController creates a new controller
func NewController(dryRun bool) *Controller {
	return &Controller{DryRun: dryRun}
}

// MaybeWrite overwrites path with final when it differs from original.
// The file keeps its permission bits; no file is ever created.
func (c *Controller) MaybeWrite(ctx context.Context, path, original, final string) (Outcome, error) {
	logger := zerolog.Ctx(ctx)

	if final == original {
		logger.Trace().Str("file", path).Msg("content unchanged")
		return Unchanged, nil
	}

	if c.DryRun {
		logger.Debug().Str("file", path).Msg("dry run, not writing")
		return Pending, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Unchanged, errors.Errorf("checking file %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(final), info.Mode().Perm()); err != nil {
		return Unchanged, errors.Errorf("writing file %s: %w", path, err)
	}

	logger.Debug().Str("file", path).Int("bytes", len(final)).Msg("file written")
	return Written, nil
}

// Diff renders the difference between original and final for a terminal
func Diff(original, final string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, final, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
