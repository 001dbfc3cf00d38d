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

package suppress_test

import (
	"testing"

	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/source"
	. "fillmore-labs.com/declguard/internal/suppress"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.js", ""+
		"var a; // declguard-disable-line\n"+
		"// declguard-disable-next-line: noundef\n"+
		"missing;\n"+
		"clean;\n")

	s := Collect(f)

	tests := []struct {
		line int
		rule string
		want bool
	}{
		{1, "onevar", true},
		{1, "noundef", true},
		{3, "noundef", true},
		{3, "onevar", false},
		{4, "noundef", false},
	}

	for _, tt := range tests {
		if got := s.Suppressed(tt.line, tt.rule); got != tt.want {
			t.Errorf("Got Suppressed(%d, %q) = %t, want %t", tt.line, tt.rule, got, tt.want)
		}
	}
}

func TestCollectNone(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.js", "var a;\nvar b;\n")

	if s := Collect(f); s != nil {
		t.Errorf("Got suppressions %v, want none", s)
	}
}

func TestCollectUnrestrictedWins(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.js", ""+
		"// declguard-disable-next-line: onevar\n"+
		"var a; // declguard-disable-line\n")

	if s := Collect(f); !s.Suppressed(2, "noundef") {
		t.Error("Got rule-scoped suppression, want the unrestricted directive to win")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	src := "" +
		"var a; // declguard-disable-line\n" + // line 2 starts at 33
		"// declguard-disable-next-line: noundef\n" + // line 3 starts at 73
		"missing;\n" + // line 4 starts at 82
		"other;\n"
	f := source.NewFile("test.js", src)

	diagnostics := []report.Diagnostic{
		{Start: 0, ID: report.Combine, BindingKind: "var"},
		{Start: 73, ID: report.Undef, BindingKind: "missing"},
		{Start: 73, ID: report.Combine, BindingKind: "var"},
		{Start: 82, ID: report.Undef, BindingKind: "other"},
	}

	got := Filter(f, diagnostics)

	if len(got) != 2 {
		t.Fatalf("Got %d diagnostics, want 2", len(got))
	}

	if got[0].ID != report.Combine || got[0].Start != 73 {
		t.Errorf("Got first diagnostic %+v, want the rule-scoped survivor on line 3", got[0])
	}

	if got[1].ID != report.Undef || got[1].Start != 82 {
		t.Errorf("Got second diagnostic %+v, want the finding on line 4", got[1])
	}
}
