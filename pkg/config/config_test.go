package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rewriterc/pkg/catalog"
	"github.com/walteh/rewriterc/pkg/text"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: "rewriterc.yaml",
			config: `
mode: span
base: clients
ignore:
  - "**/old/**"
packages: [openasearch-core]
layouts: [src/main/scala]
patterns:
  - name: ulong
    match: '\bulong\b'
    replace: Long
literals:
  - name: pretty-default
    find: "pretty: Boolean,"
    replace: "pretty: Boolean=false,"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "span", cfg.Mode)
				assert.Equal(t, filepath.Join(filepath.Dir(cfg.Location()), "clients"), cfg.Base)
				assert.Equal(t, "**/*.scala", cfg.Include)
				assert.Equal(t, []string{"**/old/**"}, cfg.Ignore)
				assert.Equal(t, []text.PatternRule{{Name: "ulong", Match: `\bulong\b`, Replace: "Long"}}, cfg.Patterns)
				assert.Equal(t, []text.LiteralRule{{Name: "pretty-default", Find: "pretty: Boolean,", Replace: "pretty: Boolean=false,"}}, cfg.Literals)
			},
		},
		{
			name: "json",
			file: "rewriterc.json",
			config: `{
  "base": "/srv/clients",
  "include": "**/*.sc",
  "patterns": [{"name": "uint", "match": "\\buint\\b", "replace": "Int"}],
  "literals": [{"name": "lazy", "find": "implicit val", "replace": "implicit lazy val"}]
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "text", cfg.Mode)
				assert.Equal(t, "/srv/clients", cfg.Base)
				assert.Equal(t, "**/*.sc", cfg.Include)
				assert.Equal(t, `\buint\b`, cfg.Patterns[0].Match)
				assert.Equal(t, "implicit lazy val", cfg.Literals[0].Replace)
			},
		},
		{
			name: "hcl",
			file: "rewriterc.hcl",
			config: `
packages = default_packages
layouts  = default_layouts
include  = default_include

pattern "ulong" {
  match   = "\\bulong\\b"
  replace = "Long"
}

pattern "manager" {
  match   = "class (\\w+)Manager\\(x: T\\)"
  replace = <<EOT
trait $1Manager {
  def x: T
}
EOT
}

literal "pretty-default" {
  find    = "pretty: Boolean,"
  replace = "pretty: Boolean=false,"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, catalog.Packages(), cfg.Packages)
				assert.Equal(t, catalog.Layouts(), cfg.Layouts)
				assert.Equal(t, catalog.Include, cfg.Include)
				assert.Equal(t, filepath.Dir(cfg.Location()), cfg.Base)
				require.Len(t, cfg.Patterns, 2)
				assert.Equal(t, text.PatternRule{Name: "ulong", Match: `\bulong\b`, Replace: "Long"}, cfg.Patterns[0])
				assert.Equal(t, "trait $1Manager {\n  def x: T\n}\n", cfg.Patterns[1].Replace)
				require.Len(t, cfg.Literals, 1)
				assert.Equal(t, "pretty-default", cfg.Literals[0].Name)
			},
		},
		{
			name:        "unknown_yaml_field",
			file:        "rewriterc.yml",
			config:      "rules: []\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "rewriterc.json",
			config:      `{"destination": "x"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_hcl_argument",
			file:        "rewriterc.hcl",
			config:      `destination = "x"`,
			errContains: "decoding HCL",
		},
		{
			name:        "bad_mode",
			file:        "rewriterc.yaml",
			config:      "mode: fuzzy\n",
			errContains: `mode must be "text" or "span", got "fuzzy"`,
		},
		{
			name:        "nameless_pattern",
			file:        "rewriterc.yaml",
			config:      "patterns:\n  - match: a\n",
			errContains: "pattern 0: name is required",
		},
		{
			name:        "pattern_without_match",
			file:        "rewriterc.yaml",
			config:      "patterns:\n  - name: a\n",
			errContains: "pattern 0 (a): match is required",
		},
		{
			name:        "literal_without_find",
			file:        "rewriterc.json",
			config:      `{"literals": [{"name": "x", "replace": "y"}]}`,
			errContains: "literal 0 (x): find is required",
		},
		{
			name:        "unsupported_extension",
			file:        "rewriterc.toml",
			config:      "",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.config)

			cfg, err := Load(testContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoad_HCLBracedPlaceholder(t *testing.T) {
	path := writeConfig(t, "rewriterc.hcl", `
pattern "manager" {
  match   = "(\\w+)Manager"
  replace = "$${1}0Service-$1"
}
`)

	cfg, err := Load(testContext(t), path)
	require.NoError(t, err)
	require.Len(t, cfg.Patterns, 1)
	assert.Equal(t, `(\w+)Manager`, cfg.Patterns[0].Match)
	assert.Equal(t, "${1}0Service-$1", cfg.Patterns[0].Replace, "escaped interpolation reaches the rule as a braced placeholder")

	c, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "Foo0Service-Foo", c.Rewrite("FooManager").ModifiedContent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Empty(t, cfg.Location())
	assert.Equal(t, ".", cfg.Base)

	c, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, text.ModeText, c.Mode())
	assert.Equal(t, len(catalog.Patterns())+len(catalog.Literals()), c.Len())
	assert.Len(t, cfg.Roots(), len(catalog.Packages())*len(catalog.Layouts()))
}

func TestConfig_Catalog_BadPattern(t *testing.T) {
	cfg := &Config{Patterns: []text.PatternRule{{Name: "broken", Match: "(a"}}}
	require.NoError(t, cfg.Validate())

	_, err := cfg.Catalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling catalog")
	assert.Contains(t, err.Error(), "broken")
}

func TestConfig_Roots(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "base_only",
			cfg:  Config{Base: "src"},
			want: []string{"src"},
		},
		{
			name: "packages_without_layouts",
			cfg:  Config{Base: "src", Packages: []string{"a", "b"}},
			want: []string{filepath.Join("src", "a"), filepath.Join("src", "b")},
		},
		{
			name: "packages_with_layouts",
			cfg:  Config{Base: "src", Packages: []string{"a"}, Layouts: []string{"main", "jvm/main"}},
			want: []string{filepath.Join("src", "a", "main"), filepath.Join("src", "a", "jvm", "main")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Roots())
		})
	}
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &HCLParser{}, GetParser("a/rewriterc.HCL"))
	assert.IsType(t, &YAMLParser{}, GetParser("rewriterc.yml"))
	assert.IsType(t, &JSONParser{}, GetParser("rewriterc.json"))
	assert.Nil(t, GetParser("rewriterc"))
}
