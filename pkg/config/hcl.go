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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/rewriterc/pkg/catalog"
	"github.com/walteh/rewriterc/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL.
// The shipped package list and layouts are available as default_packages and default_layouts.
// Strings are HCL templates, so a braced placeholder is written "$${1}" to reach the rule as "${1}".
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "rewriterc.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_packages": stringList(catalog.Packages()),
			"default_layouts":  stringList(catalog.Layouts()),
			"default_include":  cty.StringVal(catalog.Include),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Mode     string   `hcl:"mode,optional"`
		Base     string   `hcl:"base,optional"`
		Include  string   `hcl:"include,optional"`
		Ignore   []string `hcl:"ignore,optional"`
		Packages []string `hcl:"packages,optional"`
		Layouts  []string `hcl:"layouts,optional"`
		Patterns []struct {
			Name    string `hcl:"name,label"`
			Match   string `hcl:"match"`
			Replace string `hcl:"replace,optional"`
		} `hcl:"pattern,block"`
		Literals []struct {
			Name    string `hcl:"name,label"`
			Find    string `hcl:"find"`
			Replace string `hcl:"replace,optional"`
		} `hcl:"literal,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Mode:     hclCfg.Mode,
		Base:     hclCfg.Base,
		Include:  hclCfg.Include,
		Ignore:   hclCfg.Ignore,
		Packages: hclCfg.Packages,
		Layouts:  hclCfg.Layouts,
	}
	for _, r := range hclCfg.Patterns {
		cfg.Patterns = append(cfg.Patterns, text.PatternRule{Name: r.Name, Match: r.Match, Replace: r.Replace})
	}
	for _, r := range hclCfg.Literals {
		cfg.Literals = append(cfg.Literals, text.LiteralRule{Name: r.Name, Find: r.Find, Replace: r.Replace})
	}

	return cfg, nil
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	out := make([]cty.Value, len(values))
	for i, v := range values {
		out[i] = cty.StringVal(v)
	}
	return cty.ListVal(out)
}
