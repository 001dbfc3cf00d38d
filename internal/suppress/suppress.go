// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package suppress filters findings disabled by in-source directive comments:
//
//	stmt; // declguard-disable-line
//	// declguard-disable-next-line:onevar,noundef
//
// A directive without a rule list disables every rule on the targeted line.
package suppress

import (
	"regexp"
	"strings"

	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/source"
)

// Suppressions maps 1-based source lines to the rules disabled on them. A nil
// rule set disables every rule on that line.
type Suppressions map[int]map[string]bool

var directivePattern = regexp.MustCompile(`//\s*declguard-disable-(next-)?line(?::\s*([a-zA-Z0-9,_ -]+))?`)

// Collect scans every line of the file for disable directives. Returns nil
// when the file contains none.
func Collect(file *source.File) Suppressions {
	var s Suppressions

	for line := 1; line <= file.LineCount(); line++ {
		matches := directivePattern.FindStringSubmatch(file.LineText(line))
		if matches == nil {
			continue
		}

		target := line
		if matches[1] != "" {
			target = line + 1
		}

		if s == nil {
			s = Suppressions{}
		}
		s.add(target, matches[2])
	}

	return s
}

// add records a directive for the given line. An unrestricted directive
// subsumes any rule list already recorded there.
func (s Suppressions) add(line int, list string) {
	if list == "" {
		s[line] = nil

		return
	}

	rules, seen := s[line]
	if seen && rules == nil {
		return
	}

	if rules == nil {
		rules = make(map[string]bool)
		s[line] = rules
	}

	// Parse comma-separated rule list
	for rule := range strings.SplitSeq(list, ",") {
		if r := strings.ToLower(strings.TrimSpace(rule)); r != "" {
			rules[r] = true
		}
	}
}

// Suppressed reports whether the named rule is disabled on the given line.
func (s Suppressions) Suppressed(line int, rule string) bool {
	rules, ok := s[line]
	if !ok {
		return false
	}

	return rules == nil || rules[rule]
}

// Filter drops the diagnostics whose start line carries a matching disable
// directive. The input slice is not modified.
func Filter(file *source.File, diagnostics []report.Diagnostic) []report.Diagnostic {
	if len(diagnostics) == 0 {
		return diagnostics
	}

	s := Collect(file)
	if s == nil {
		return diagnostics
	}

	kept := make([]report.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		if !s.Suppressed(file.Line(d.Start), d.ID.Rule()) {
			kept = append(kept, d)
		}
	}

	return kept
}
