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

import "strings"

// Rewrite applies every pattern rule and then every literal rule to original.
// Each rule sees the output of the rules before it and never re-scans its own output.
// Rewrite does no I/O and never fails.
func (c *Catalog) Rewrite(original string) *Result {
	result := &Result{
		OriginalContent: original,
	}

	content := original
	for _, p := range c.patterns {
		var n int
		if c.mode == ModeSpan {
			content, n = p.replaceSpans(content)
		} else {
			content, n = p.replaceText(content)
		}
		if n > 0 {
			result.ReplacementCount += n
			result.Applied = append(result.Applied, p.rule.Name)
		}
	}

	for _, rule := range c.literals {
		// Skip empty rules
		if rule.Find == "" {
			continue
		}

		newContent := strings.ReplaceAll(content, rule.Find, rule.Replace)
		if newContent != content {
			result.ReplacementCount += strings.Count(content, rule.Find)
			result.Applied = append(result.Applied, rule.Name)
		}
		content = newContent
	}

	result.ModifiedContent = content
	result.WasModified = content != original
	return result
}

// replaceText finds matches against content as it stands when the rule starts, then replaces
// every occurrence of each distinct matched text with that match's expansion.
func (p *compiledPattern) replaceText(content string) (string, int) {
	snapshot := content
	matches := p.re.FindAllStringSubmatchIndex(snapshot, -1)
	if len(matches) == 0 {
		return content, 0
	}

	count := 0
	seen := make(map[string]struct{}, len(matches))
	for _, loc := range matches {
		matched := snapshot[loc[0]:loc[1]]
		// an empty match would insert the expansion between every character
		if matched == "" {
			continue
		}
		if _, ok := seen[matched]; ok {
			continue
		}
		seen[matched] = struct{}{}

		expanded := ExpandTemplate(p.rule.Replace, submatches(snapshot, loc))
		if expanded == matched {
			continue
		}

		n := strings.Count(content, matched)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, matched, expanded)
		count += n
	}

	return content, count
}

// replaceSpans replaces exactly the matched spans
func (p *compiledPattern) replaceSpans(content string) (string, int) {
	matches := p.re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))

	count, last := 0, 0
	for _, loc := range matches {
		expanded := ExpandTemplate(p.rule.Replace, submatches(content, loc))
		b.WriteString(content[last:loc[0]])
		b.WriteString(expanded)
		if expanded != content[loc[0]:loc[1]] {
			count++
		}
		last = loc[1]
	}
	b.WriteString(content[last:])

	if count == 0 {
		return content, 0
	}
	return b.String(), count
}

// submatches returns capture groups 1..n for a match; groups that did not participate are empty
func submatches(s string, loc []int) []string {
	groups := make([]string, len(loc)/2-1)
	for i := range groups {
		start, end := loc[2*i+2], loc[2*i+3]
		if start >= 0 {
			groups[i] = s[start:end]
		}
	}
	return groups
}
