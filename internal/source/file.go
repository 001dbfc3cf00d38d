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

// Package source provides a read-only view over a single JavaScript source
// file: raw text slices by byte range, line/column positions and token
// scanning around known node boundaries.
package source

import (
	"sort"
	"strings"

	"github.com/t14raptor/go-fast/ast"
)

// File is an immutable source file. Offsets are the zero-based byte indices
// used by [ast.Node] positions.
type File struct {
	name  string
	src   string
	lines []int
}

// NewFile creates a [File] for the given file name and contents.
func NewFile(name, src string) *File {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &File{name: name, src: src, lines: lines}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Src returns the complete source text.
func (f *File) Src() string { return f.src }

// Len returns the length of the source in bytes.
func (f *File) Len() ast.Idx { return ast.Idx(len(f.src)) }

// Text returns the source slice [from, to).
func (f *File) Text(from, to ast.Idx) string {
	from = f.clamp(from)
	to = f.clamp(to)
	if from >= to {
		return ""
	}

	return f.src[from:to]
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Position converts a byte offset into a [Position].
func (f *File) Position(idx ast.Idx) Position {
	i := int(f.clamp(idx))
	line := sort.SearchInts(f.lines, i+1) - 1

	return Position{Line: line + 1, Column: i - f.lines[line] + 1}
}

// Line returns the 1-based line of a byte offset.
func (f *File) Line(idx ast.Idx) int { return f.Position(idx).Line }

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int { return len(f.lines) }

// SameLine reports whether two offsets fall on the same source line.
func (f *File) SameLine(a, b ast.Idx) bool { return f.Line(a) == f.Line(b) }

func (f *File) clamp(idx ast.Idx) ast.Idx {
	if idx < 0 {
		return 0
	}
	if idx > ast.Idx(len(f.src)) {
		return ast.Idx(len(f.src))
	}

	return idx
}

// LineText returns the text of the 1-based line, without the terminator.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.lines) {
		return ""
	}

	start := f.lines[line-1]
	end := len(f.src)
	if line < len(f.lines) {
		end = f.lines[line] - 1
	}

	return strings.TrimSuffix(f.src[start:end], "\r")
}
