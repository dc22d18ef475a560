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

package text

import (
	"regexp"
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Catalog is the compiled, read-only set of rules applied to every file.
// Pattern rules always run before literal rules; both run in declaration order.
type Catalog struct {
	mode     Mode
	patterns []compiledPattern
	literals []LiteralRule
}

// NewCatalog compiles the pattern rules and returns an immutable catalog.
// A pattern that fails to compile is reported with its position and name.
func NewCatalog(mode Mode, patterns []PatternRule, literals []LiteralRule) (*Catalog, error) {
	m, ok := ParseMode(string(mode))
	if !ok {
		return nil, errors.Errorf("unknown rewrite mode %q", mode)
	}

	c := &Catalog{
		mode:     m,
		patterns: make([]compiledPattern, 0, len(patterns)),
		literals: slices.Clone(literals),
	}

	for i, rule := range patterns {
		re, err := regexp.Compile("(?m)" + rule.Match)
		if err != nil {
			return nil, errors.Errorf("compiling pattern rule %d (%s): %w", i, rule.Name, err)
		}
		c.patterns = append(c.patterns, compiledPattern{rule: rule, re: re})
	}

	return c, nil
}

// Mode returns how pattern matches are written back
func (c *Catalog) Mode() Mode {
	return c.mode
}

// Patterns returns a copy of the pattern rules in application order
func (c *Catalog) Patterns() []PatternRule {
	out := make([]PatternRule, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = p.rule
	}
	return out
}

// Literals returns a copy of the literal rules in application order
func (c *Catalog) Literals() []LiteralRule {
	return slices.Clone(c.literals)
}

// Len returns the total number of rules
func (c *Catalog) Len() int {
	return len(c.patterns) + len(c.literals)
}

// Validate reports authoring mistakes that do not stop a run: placeholders that name a missing
// group, empty literal rules and literal rules that would match their own replacement.
func (c *Catalog) Validate() []error {
	var errs []error

	for i, p := range c.patterns {
		groups := p.re.NumSubexp()
		for _, idx := range placeholderIndices(p.rule.Replace) {
			if idx < 1 || idx > groups {
				errs = append(errs, errors.Errorf("pattern rule %d (%s): placeholder $%d does not name one of %d groups", i, p.rule.Name, idx, groups))
			}
		}
	}

	for i, l := range c.literals {
		switch {
		case l.Find == "":
			errs = append(errs, errors.Errorf("literal rule %d (%s): find text is empty", i, l.Name))
		case strings.Contains(l.Replace, l.Find):
			errs = append(errs, errors.Errorf("literal rule %d (%s): replacement contains the find text", i, l.Name))
		}
	}

	return errs
}
