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
	"strings"
)

// PatternRule rewrites every match of a regular expression with an interpolated template
type PatternRule struct {
	// Name identifies the rule in logs and listings
	Name string `json:"name" yaml:"name"`

	// Match is the regular expression to search for, compiled in multi-line mode
	Match string `json:"match" yaml:"match"`

	// Replace is the template for each match; $1..$n (or ${1}..${n}) are replaced with capture groups
	Replace string `json:"replace" yaml:"replace"`
}

// LiteralRule replaces every occurrence of an exact substring
type LiteralRule struct {
	// Name identifies the rule in logs and listings
	Name string `json:"name" yaml:"name"`

	// Find is the exact text to replace
	Find string `json:"find" yaml:"find"`

	// Replace is the exact replacement text
	Replace string `json:"replace" yaml:"replace"`
}

// Mode selects how a pattern match is written back into the content
type Mode string

const (
	// ModeText replaces every occurrence of the matched text, wherever it appears in the content.
	// Two matches with identical text, or the same text outside any match, are all rewritten.
	// Each distinct matched text is replaced once per rule: with \bFoo\b -> Foo2, "Foo Foo"
	// becomes "Foo2 Foo2", not the "Foo22 Foo22" a replace per match would produce.
	ModeText Mode = "text"

	// ModeSpan replaces only the exact spans the pattern matched.
	ModeSpan Mode = "span"
)

// ParseMode converts a config value to a Mode. The empty string selects ModeText.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeText:
		return ModeText, true
	case ModeSpan:
		return ModeSpan, true
	}
	return "", false
}

type compiledPattern struct {
	rule PatternRule
	re   *regexp.Regexp
}

// Result contains the outcome of rewriting a single file's content
type Result struct {
	// OriginalContent is the content before any rule ran
	OriginalContent string

	// ModifiedContent is the content after every rule ran
	ModifiedContent string

	// WasModified reports whether ModifiedContent differs from OriginalContent
	WasModified bool

	// ReplacementCount is the number of substitutions made across all rules
	ReplacementCount int

	// Applied lists the names of the rules that changed the content, in the order they ran
	Applied []string
}
