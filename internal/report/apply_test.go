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

package report_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/declguard/internal/report"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		edits []TextEdit
		want  string
	}{
		{
			name: "Replace",
			src:  "var a; var b;",
			edits: []TextEdit{
				{Start: 5, End: 6, NewText: ","},
				{Start: 7, End: 11},
			},
			want: "var a, b;",
		},
		{
			name: "Unordered input",
			src:  "abc",
			edits: []TextEdit{
				{Start: 2, End: 3, NewText: "C"},
				{Start: 0, End: 1, NewText: "A"},
			},
			want: "AbC",
		},
		{
			name: "Insertion",
			src:  "ab",
			edits: []TextEdit{
				{Start: 1, End: 1, NewText: "-"},
			},
			want: "a-b",
		},
		{
			name:  "Empty",
			src:   "unchanged",
			edits: nil,
			want:  "unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ApplyEdits(tt.src, tt.edits)
			if err != nil {
				t.Fatalf("Can't apply edits: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyEditsOverlap(t *testing.T) {
	t.Parallel()

	_, err := ApplyEdits("abcdef", []TextEdit{
		{Start: 0, End: 3, NewText: "x"},
		{Start: 2, End: 4, NewText: "y"},
	})

	if !errors.Is(err, ErrOverlappingEdits) {
		t.Errorf("Got error %v, want %v", err, ErrOverlappingEdits)
	}
}

func TestApplyFixesSkipsConflicts(t *testing.T) {
	t.Parallel()

	src := "abcdef"

	diagnostics := []Diagnostic{
		{
			ID:  Combine,
			Fix: &SuggestedFix{Edits: []TextEdit{{Start: 0, End: 2, NewText: "X"}}},
		},
		{
			// Conflicts with the first fix and is skipped whole.
			ID: Combine,
			Fix: &SuggestedFix{Edits: []TextEdit{
				{Start: 1, End: 3, NewText: "Y"},
				{Start: 4, End: 5, NewText: "Z"},
			}},
		},
		{
			ID: Split,
			Fix: &SuggestedFix{Edits: []TextEdit{
				{Start: 5, End: 6, NewText: "W"},
			}},
		},
		{
			// No fix attached.
			ID: Undef,
		},
	}

	got, applied := ApplyFixes(src, diagnostics)

	if want := "XcdeW"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if applied != 2 {
		t.Errorf("Got %d applied fixes, want 2", applied)
	}
}
