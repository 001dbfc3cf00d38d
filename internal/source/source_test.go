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

package source_test

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"

	. "fillmore-labs.com/declguard/internal/source"
)

func asIdx(i int) ast.Idx { return ast.Idx(i) }

func TestPosition(t *testing.T) {
	t.Parallel()

	f := NewFile("test.js", "var a;\nvar b;\n")

	tests := []struct {
		idx    int
		line   int
		column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{7, 2, 1},
		{11, 2, 5},
	}

	for _, tt := range tests {
		if got := f.Position(asIdx(tt.idx)); got.Line != tt.line || got.Column != tt.column {
			t.Errorf("Got Position(%d) = %+v, want %d:%d", tt.idx, got, tt.line, tt.column)
		}
	}

	if f.SameLine(0, 5) != true || f.SameLine(5, 8) != false {
		t.Error("Got wrong SameLine results")
	}
}

func TestTokenAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		src             string
		from            int
		includeComments bool
		want            string
		comment         bool
	}{
		{
			name: "Punctuation",
			src:  "var a , b;",
			from: 5,
			want: ",",
		},
		{
			name: "Word run",
			src:  "var a;  next",
			from: 6,
			want: "next",
		},
		{
			name:            "Line comment included",
			src:             "a, // note\nb",
			from:            1,
			includeComments: true,
			want:            "// note",
			comment:         true,
		},
		{
			name: "Line comment skipped",
			src:  "a, // note\nb",
			from: 1,
			want: "b",
		},
		{
			name:            "Block comment included",
			src:             "a, /* x */ b",
			from:            1,
			includeComments: true,
			want:            "/* x */",
			comment:         true,
		},
		{
			name: "Block comment skipped",
			src:  "a, /* x */ b",
			from: 1,
			want: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFile("test.js", tt.src)

			tok, ok := f.TokenAfter(asIdx(tt.from), tt.includeComments)
			if !ok {
				t.Fatal("Got no token")
			}

			if got := tok.Text(f); got != tt.want {
				t.Errorf("Got token %q, want %q", got, tt.want)
			}

			if tok.Comment != tt.comment {
				t.Errorf("Got comment = %t, want %t", tok.Comment, tt.comment)
			}
		})
	}

	f := NewFile("test.js", "a;   ")
	if _, ok := f.TokenAfter(2, true); ok {
		t.Error("Got a token after trailing whitespace")
	}
}

func TestSkipComments(t *testing.T) {
	t.Parallel()

	f := NewFile("test.js", "a, /* one */ // two\n  b")

	tok, ok := f.TokenAfter(2, true)
	if !ok || !tok.Comment {
		t.Fatalf("Got token %+v, want a comment", tok)
	}

	first, ok := f.SkipComments(tok)
	if !ok {
		t.Fatal("Got no token after comments")
	}

	if got := first.Text(f); got != "b" {
		t.Errorf("Got token %q, want %q", got, "b")
	}
}
