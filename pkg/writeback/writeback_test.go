package writeback

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestController_MaybeWrite(t *testing.T) {
	tests := []struct {
		name        string
		dryRun      bool
		original    string
		final       string
		want        Outcome
		wantContent string
	}{
		{
			name:        "unchanged",
			original:    "val a: Long",
			final:       "val a: Long",
			want:        Unchanged,
			wantContent: "val a: Long",
		},
		{
			name:        "written",
			original:    "val a: ulong\nval b: ulong\nval c: ulong\n",
			final:       "val a: Long\n",
			want:        Written,
			wantContent: "val a: Long\n",
		},
		{
			name:        "dry_run",
			dryRun:      true,
			original:    "val a: ulong",
			final:       "val a: Long",
			want:        Pending,
			wantContent: "val a: ulong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "Stats.scala")
			require.NoError(t, os.WriteFile(path, []byte(tt.original), 0o640))

			got, err := NewController(tt.dryRun).MaybeWrite(testContext(t), path, tt.original, tt.final)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, string(data))

			if runtime.GOOS != "windows" {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
			}
		})
	}
}

func TestController_MaybeWrite_UnchangedDoesNotTouchFilesystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "Stats.scala")

	got, err := NewController(false).MaybeWrite(testContext(t), path, "same", "same")
	require.NoError(t, err)
	assert.Equal(t, Unchanged, got)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestController_MaybeWrite_NeverCreatesFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Gone.scala")

	_, err := NewController(false).MaybeWrite(testContext(t), path, "old", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking file")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "written", Written.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestDiff(t *testing.T) {
	assert.Equal(t, "pretty: Boolean\x1b[32m=false\x1b[0m,", Diff("pretty: Boolean,", "pretty: Boolean=false,"))
	assert.Equal(t, "Seq[String]\x1b[31m = Nil\x1b[0m", Diff("Seq[String] = Nil", "Seq[String]"))
	assert.Equal(t, "same", Diff("same", "same"))
}
