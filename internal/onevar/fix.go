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

package onevar

import (
	"github.com/t14raptor/go-fast/ast"

	"fillmore-labs.com/declguard/internal/config"
	"fillmore-labs.com/declguard/internal/report"
)

// joinFix connects the statement to its previous same-kind sibling: the
// terminator after the sibling becomes a comma (or a comma is inserted when
// the terminator was implicit), and the statement's own keyword is removed
// together with the inline whitespace following it.
//
// Returns nil when the previous sibling is not a declaration of the same
// kind; the checks normally guarantee one, so this is a guard, not a path
// the rule is expected to take.
func (e *evaluator) joinFix(n *ast.VariableDeclaration, kind config.Kind, ctx Context) *report.SuggestedFix {
	prev, ok := previousDeclaration(ctx, n.Token)
	if !ok {
		return nil
	}

	var edits []report.TextEdit

	if t, found := e.file.TokenAfter(prev.Idx1(), false); found && t.Is(e.file, ';') && t.Start < n.Idx {
		edits = append(edits, report.TextEdit{Start: t.Start, End: t.End, NewText: ","})
	} else {
		// Implicit terminator; attach the comma to the sibling directly.
		at := prev.Idx1()
		edits = append(edits, report.TextEdit{Start: at, End: at, NewText: ","})
	}

	kwEnd := n.Idx + ast.Idx(len(kind.String()))
	src := e.file.Src()
	for int(kwEnd) < len(src) && (src[kwEnd] == ' ' || src[kwEnd] == '\t') {
		kwEnd++
	}
	edits = append(edits, report.TextEdit{Start: n.Idx, End: kwEnd})

	return &report.SuggestedFix{
		Message: "Combine with the previous '" + kind.String() + "' statement",
		Edits:   edits,
	}
}

// splitFix rewrites each comma separating two declarators into a statement
// terminator followed by a repeated keyword. Three textual layouts are
// handled: a comma directly adjacent to the next token, a comma followed by
// comments (kept verbatim, the keyword lands after the last one), and a
// comma whose next token sits on a later line (original whitespace kept).
// Plain same-line whitespace after the comma is normalized to a line break.
//
// Returns nil when the statement is not part of a statement list: splitting
// the bare body of an unbraced if or loop would need braces as well, which
// is out of scope for this fixer.
func (e *evaluator) splitFix(n *ast.VariableDeclaration, kind config.Kind, ctx Context) *report.SuggestedFix {
	if ctx.List == nil {
		return nil
	}

	kw := kind.String()

	var edits []report.TextEdit

	for i := 0; i+1 < len(n.List); i++ {
		comma, ok := e.file.TokenAfter(n.List[i].Idx1(), false)
		if !ok || !comma.Is(e.file, ',') {
			// The declarator end does not line up with a separator, e.g. a
			// parenthesized initializer; leave this boundary alone.
			continue
		}

		next, ok := e.file.TokenAfter(comma.End, true)
		if !ok {
			continue
		}

		switch {
		case next.Start == comma.End:
			edits = append(edits, report.TextEdit{
				Start:   comma.Start,
				End:     comma.End,
				NewText: ";\n" + kw + " ",
			})

		case next.Comment || !e.file.SameLine(comma.End, next.Start):
			first, ok := e.file.SkipComments(next)
			if !ok {
				continue
			}

			edits = append(edits, report.TextEdit{
				Start:   comma.Start,
				End:     first.Start,
				NewText: ";" + e.file.Text(comma.End, first.Start) + kw + " ",
			})

		default:
			edits = append(edits, report.TextEdit{
				Start:   comma.Start,
				End:     next.Start,
				NewText: ";\n" + kw + " ",
			})
		}
	}

	if len(edits) == 0 {
		return nil
	}

	return &report.SuggestedFix{
		Message: "Split the '" + kw + "' declaration into multiple statements",
		Edits:   edits,
	}
}
