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

// maxGroupIndex caps placeholder parsing so oversized indices cannot overflow
const maxGroupIndex = 1 << 16

// ExpandTemplate substitutes the placeholders in template with capture groups.
//
// groups holds capture groups 1..n in order (the whole match is not included). A placeholder is a
// '$' followed by the longest run of decimal digits, or by digits wrapped in braces ("${1}0"
// yields group 1 followed by a literal '0'). Placeholders that name a group which did not
// participate in the match, or a group that does not exist, expand to the empty string. A '$' that
// does not start a placeholder is copied through unchanged.
func ExpandTemplate(template string, groups []string) string {
	if !strings.Contains(template, "$") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	walkTemplate(template, func(literal string, index int) {
		if index < 0 {
			b.WriteString(literal)
			return
		}
		if index >= 1 && index <= len(groups) {
			b.WriteString(groups[index-1])
		}
	})
	return b.String()
}

// placeholderIndices returns every group index referenced by template, in order of appearance
func placeholderIndices(template string) []int {
	var out []int
	walkTemplate(template, func(_ string, index int) {
		if index >= 0 {
			out = append(out, index)
		}
	})
	return out
}

// walkTemplate splits template into literal runs (index == -1) and placeholders
func walkTemplate(template string, fn func(literal string, index int)) {
	start := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '$' {
			continue
		}
		index, width, ok := parsePlaceholder(template[i+1:])
		if !ok {
			continue
		}
		if start < i {
			fn(template[start:i], -1)
		}
		fn("", index)
		i += width
		start = i + 1
	}
	if start < len(template) {
		fn(template[start:], -1)
	}
}

// parsePlaceholder reads the index after a '$'. width is the number of bytes consumed after the '$'.
func parsePlaceholder(s string) (index, width int, ok bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		n, digits := parseDigits(s[1:end])
		if digits != end-1 {
			return 0, 0, false
		}
		return n, end + 1, true
	}

	n, digits := parseDigits(s)
	if digits == 0 {
		return 0, 0, false
	}
	return n, digits, true
}

func parseDigits(s string) (n, digits int) {
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n < maxGroupIndex {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	return n, digits
}
