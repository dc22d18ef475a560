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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/catalog"
	"github.com/walteh/rewriterc/pkg/enumerate"
	"github.com/walteh/rewriterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes one migration pass: where to look and which rules to apply
type Config struct {
	Mode     string             `json:"mode,omitempty" yaml:"mode,omitempty"`
	Base     string             `json:"base,omitempty" yaml:"base,omitempty"`
	Include  string             `json:"include,omitempty" yaml:"include,omitempty"`
	Ignore   []string           `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Packages []string           `json:"packages,omitempty" yaml:"packages,omitempty"`
	Layouts  []string           `json:"layouts,omitempty" yaml:"layouts,omitempty"`
	Patterns []text.PatternRule `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Literals []text.LiteralRule `json:"literals,omitempty" yaml:"literals,omitempty"`

	location string
}

// 🎯 Default returns the shipped catalog
func Default() *Config {
	cfg := &Config{
		Mode:     string(text.ModeText),
		Base:     ".",
		Include:  catalog.Include,
		Packages: catalog.Packages(),
		Layouts:  catalog.Layouts(),
		Patterns: catalog.Patterns(),
		Literals: catalog.Literals(),
	}
	return cfg
}

// 🎯 Load loads the configuration from a file.
// The base directory defaults to, and a relative one is resolved against, the directory holding the file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if cfg.Base == "" {
		cfg.Base = "."
	}
	if !filepath.IsAbs(cfg.Base) {
		cfg.Base = filepath.Join(filepath.Dir(path), cfg.Base)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("patterns", len(cfg.Patterns)).
		Int("literals", len(cfg.Literals)).
		Int("packages", len(cfg.Packages)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	mode, ok := text.ParseMode(cfg.Mode)
	if !ok {
		return errors.Errorf("mode must be %q or %q, got %q", text.ModeText, text.ModeSpan, cfg.Mode)
	}
	cfg.Mode = string(mode)

	for i, p := range cfg.Patterns {
		if p.Name == "" {
			return errors.Errorf("pattern %d: name is required", i)
		}
		if p.Match == "" {
			return errors.Errorf("pattern %d (%s): match is required", i, p.Name)
		}
	}
	for i, l := range cfg.Literals {
		if l.Name == "" {
			return errors.Errorf("literal %d: name is required", i)
		}
		if l.Find == "" {
			return errors.Errorf("literal %d (%s): find is required", i, l.Name)
		}
	}

	// Set defaults
	if cfg.Base == "" {
		cfg.Base = "."
	}
	if cfg.Include == "" {
		cfg.Include = enumerate.DefaultInclude
	}
	cfg.Base = filepath.Clean(cfg.Base)

	return nil
}

// 📍 Location returns the file the config was loaded from, or "" for the shipped catalog
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔧 Catalog compiles the rules
func (cfg *Config) Catalog() (*text.Catalog, error) {
	c, err := text.NewCatalog(text.Mode(cfg.Mode), cfg.Patterns, cfg.Literals)
	if err != nil {
		return nil, errors.Errorf("compiling catalog: %w", err)
	}
	return c, nil
}

// 📂 Roots returns the directories to search. Without packages the base directory is the only
// root; a package without layouts is searched from its own directory.
func (cfg *Config) Roots() []string {
	if len(cfg.Packages) == 0 {
		return []string{cfg.Base}
	}
	layouts := cfg.Layouts
	if len(layouts) == 0 {
		layouts = []string{""}
	}
	return enumerate.Roots(cfg.Base, cfg.Packages, layouts)
}

// 📂 EnumerateOptions returns the file filters
func (cfg *Config) EnumerateOptions() enumerate.Options {
	return enumerate.Options{
		Include: cfg.Include,
		Ignore:  cfg.Ignore,
	}
}
