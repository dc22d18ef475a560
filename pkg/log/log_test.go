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


package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("warning message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"⚠️  warning message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("warning %s", "test")
				logger.Successf("updated %d of %d files", 2, 40)
			},
			wantLogs: []string{
				"⚠️  warning test",
				"✅ updated 2 of 40 files",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rewriting 40 files")
			},
			wantLogs: []string{
				"rewriterc • rewriting 40 files",
			},
		},
		{
			name: "log_raw",
			op: func(t *testing.T, logger *Logger) {
				logger.Raw("first")
				logger.Raw("second\n")
			},
			wantLogs: []string{
				"first",
				"second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Nop())

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want []string
	}{
		{
			name: "written_file",
			op: FileOperation{
				Path:         "openasearch-cat/src/main/scala/zio/cat/CatManager.scala",
				Status:       "written",
				Replacements: 3,
				Rules:        []string{"manager-layer", "default-pretty"},
			},
			want: []string{"⟳", "openasearch-cat/src/main/scala/zio/cat/CatManager.scala", "written", "3", "replacements"},
		},
		{
			name: "pending_file",
			op: FileOperation{
				Path:         "Stats.scala",
				Status:       "pending",
				IsPending:    true,
				Replacements: 1,
			},
			want: []string{"•", "Stats.scala", "pending", "1", "replacements"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Log operation
			logger.LogFileOperation(context.Background(), tt.op)

			// Check output
			assert.True(t, strings.HasPrefix(buf.String(), "    "), "file lines are indented")
			assert.Equal(t, tt.want, strings.Fields(buf.String()), "formatted output should match")
			assert.Equal(t, []FileOperation{tt.op}, logger.Operations())
		})
	}
}
