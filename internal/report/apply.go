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

package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrOverlappingEdits is returned when two edits touch the same source range.
var ErrOverlappingEdits = errors.New("overlapping edits")

// ApplyFixes applies the suggested fixes of the diagnostics to src and
// returns the rewritten text. Diagnostics without a fix are ignored. Fixes
// whose edits overlap an already accepted edit are skipped whole, so a later
// run can pick them up on the rewritten source.
func ApplyFixes(src string, diagnostics []Diagnostic) (string, int) {
	var accepted []TextEdit

	applied := 0
	for _, d := range diagnostics {
		if d.Fix == nil || len(d.Fix.Edits) == 0 {
			continue
		}

		if overlaps(accepted, d.Fix.Edits) {
			continue
		}

		accepted = append(accepted, d.Fix.Edits...)
		applied++
	}

	out, err := ApplyEdits(src, accepted)
	if err != nil {
		// Overlap within one fix; the synthesizers never produce this.
		return src, 0
	}

	return out, applied
}

// ApplyEdits splices the edits into src. The edits may be given in any order
// but must not overlap.
func ApplyEdits(src string, edits []TextEdit) (string, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b TextEdit) int {
		if a.Start != b.Start {
			return cmp.Compare(a.Start, b.Start)
		}

		return cmp.Compare(a.End, b.End)
	})

	var out strings.Builder

	last := 0
	for _, e := range sorted {
		start, end := int(e.Start), int(e.End)
		if start < last || end < start || end > len(src) {
			return "", fmt.Errorf("report: edit [%d,%d): %w", start, end, ErrOverlappingEdits)
		}

		out.WriteString(src[last:start]) // ignore error
		out.WriteString(e.NewText)       // ignore error
		last = end
	}
	out.WriteString(src[last:]) // ignore error

	return out.String(), nil
}

// overlaps reports whether any new edit intersects one of the accepted edits.
// Insertions at the boundary of an existing edit count as overlapping; the
// ranges involved are tiny, so the quadratic scan is fine.
func overlaps(accepted, edits []TextEdit) bool {
	for _, e := range edits {
		for _, a := range accepted {
			if e.Start <= a.End && a.Start <= e.End {
				return true
			}
		}
	}

	return false
}
