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

package enumerate

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultInclude matches every Scala source below a root
const DefaultInclude = "**/*.scala"

// Options controls which files below each root are returned
type Options struct {
	// Include is the doublestar pattern, relative to a root, a file must match
	Include string

	// Ignore lists doublestar patterns, relative to a root, that exclude a file
	Ignore []string
}

// Roots expands every package into its conventional source directories below base.
// Order follows packages first, then layouts.
func Roots(base string, packages, layouts []string) []string {
	roots := make([]string, 0, len(packages)*len(layouts))
	for _, pkg := range packages {
		for _, layout := range layouts {
			roots = append(roots, filepath.Join(base, pkg, filepath.FromSlash(layout)))
		}
	}
	return roots
}

// Files walks every root and returns the matching files, sorted and without duplicates.
// Roots that do not exist are skipped; any other I/O error stops the walk.
func Files(ctx context.Context, roots []string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	include := opts.Include
	if include == "" {
		include = DefaultInclude
	}
	if !doublestar.ValidatePattern(include) {
		return nil, errors.Errorf("invalid include pattern %q", include)
	}
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Trace().Str("root", root).Msg("skipping missing root")
				continue
			}
			return nil, errors.Errorf("checking root %s: %w", root, err)
		}
		if !info.IsDir() {
			logger.Trace().Str("root", root).Msg("skipping root that is not a directory")
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(root), include, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, errors.Errorf("walking %s: %w", root, err)
		}

		for _, rel := range matches {
			if shouldIgnore(ctx, opts.Ignore, rel) {
				continue
			}
			files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
		}
		logger.Debug().Str("root", root).Int("files", len(matches)).Msg("walked root")
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// shouldIgnore checks if a file should be ignored
func shouldIgnore(ctx context.Context, patterns []string, path string) bool {
	for _, pattern := range patterns {
		// patterns are validated up front, so Match cannot fail here
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
