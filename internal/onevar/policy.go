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
	"github.com/t14raptor/go-fast/token"

	"fillmore-labs.com/declguard/internal/config"
	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/scope"
	"fillmore-labs.com/declguard/internal/source"
)

// Context describes where a declaration statement sits in its parent.
type Context struct {
	// List is the enclosing statement list, nil when the statement is the
	// bare body of a control construct or a loop-header declaration.
	List ast.Statements

	// Index is the statement's position in List.
	Index int

	// ForInit marks the initializer clause of a counted for loop.
	ForInit bool

	// ForInOf marks the left side of a for-in or for-of loop.
	ForInOf bool
}

// evaluator applies the grouping policy to one declaration statement at a
// time, consulting and updating the scope records of the traversal.
type evaluator struct {
	policy config.Policy
	scopes *scope.Stack
	file   *source.File
	sink   func(report.Diagnostic)
}

// check runs the four policy checks in their fixed order. Several checks can
// fire for the same statement; diagnostics are not deduplicated here.
func (e *evaluator) check(n *ast.VariableDeclaration, ctx Context) {
	kind, ok := config.KindOf(n.Token)
	if !ok {
		return
	}

	modes := e.policy.Modes(kind)
	counts := classify(n.List)

	// 1. A statement mixing require() declarators with plain ones can never
	// be grouped cleanly; it only warns, there is no safe rewrite.
	if e.policy.SeparateRequires && counts.mixedRequires() {
		e.emit(n, report.SplitRequires, kind, nil)
	}

	// 2. Adjacent same-kind statements under a consecutive mode.
	if prev, ok := previousDeclaration(ctx, n.Token); ok {
		prevCounts := classify(prev.List)
		if !unionMixesRequires(counts, prevCounts) {
			switch {
			case modes.Initialized == config.Consecutive && modes.Uninitialized == config.Consecutive:
				e.emit(n, report.Combine, kind, e.joinFix(n, kind, ctx))

			case modes.Initialized == config.Consecutive &&
				counts.initialized > 0 && prevCounts.initialized > 0:
				e.emit(n, report.CombineInitialized, kind, e.joinFix(n, kind, ctx))

			case modes.Uninitialized == config.Consecutive &&
				counts.uninitialized > 0 && prevCounts.uninitialized > 0:
				e.emit(n, report.CombineUninitialized, kind, e.joinFix(n, kind, ctx))
			}
		}
	}

	// 3. Scope-wide single-statement constraint under an always mode.
	if !e.hasOnlyOneStatement(kind, modes, counts) {
		if modes.Initialized == config.Always && modes.Uninitialized == config.Always {
			e.emit(n, report.Combine, kind, e.joinFix(n, kind, ctx))
		} else {
			if modes.Initialized == config.Always && counts.initialized > 0 {
				e.emit(n, report.CombineInitialized, kind, e.joinFix(n, kind, ctx))
			}
			if modes.Uninitialized == config.Always && counts.uninitialized > 0 && !ctx.ForInOf {
				e.emit(n, report.CombineUninitialized, kind, e.joinFix(n, kind, ctx))
			}
		}
	}

	// 4. One declarator per statement under a never mode. The initializer of
	// a counted loop header is exempt: `for (var i = 0, n = len; ...)` has
	// nowhere to split to.
	if !ctx.ForInit && counts.total > 1 {
		switch {
		case modes.Initialized == config.Never && modes.Uninitialized == config.Never:
			e.emit(n, report.Split, kind, e.splitFix(n, kind, ctx))

		case modes.Initialized == config.Never && counts.initialized > 0:
			e.emit(n, report.SplitInitialized, kind, e.splitFix(n, kind, ctx))

		case modes.Uninitialized == config.Never && counts.uninitialized > 0:
			e.emit(n, report.SplitUninitialized, kind, e.splitFix(n, kind, ctx))
		}
	}
}

// hasOnlyOneStatement reports whether the statement is the first of its kind
// to claim the always-tracked state in the current scope, recording its
// contribution if so. A false result is a violation of the single-statement
// constraint.
//
// Statements consisting entirely of require() declarators form their own
// consolidation group and are exempt from the initialized constraints. Under
// separate-requires a second require() group is still a violation; without
// the option the required flag is never tracked.
func (e *evaluator) hasOnlyOneStatement(kind config.Kind, modes config.BucketModes, counts declCounts) bool {
	rec := e.scopes.Current(kind)

	if modes.Initialized == config.Always && modes.Uninitialized == config.Always {
		if (rec.Initialized || rec.Uninitialized) && !counts.allRequires() {
			return false
		}
	}

	if counts.uninitialized > 0 && modes.Uninitialized == config.Always && rec.Uninitialized {
		return false
	}

	if counts.initialized > 0 && modes.Initialized == config.Always && rec.Initialized &&
		!counts.allInitializedRequire() {
		return false
	}

	if e.policy.SeparateRequires && rec.Required && counts.someRequires() {
		return false
	}

	if counts.uninitialized > 0 && modes.Uninitialized == config.Always {
		rec.Uninitialized = true
	}
	if counts.initialized > 0 && modes.Initialized == config.Always {
		rec.Initialized = true
	}
	if e.policy.SeparateRequires && counts.someRequires() {
		rec.Required = true
	}

	return true
}

// previousDeclaration returns the immediately preceding sibling statement
// when it is a declaration of the same keyword.
func previousDeclaration(ctx Context, tok token.Token) (*ast.VariableDeclaration, bool) {
	if ctx.List == nil || ctx.Index == 0 {
		return nil, false
	}

	prev, ok := ctx.List[ctx.Index-1].Stmt.(*ast.VariableDeclaration)
	if !ok || prev.Token != tok {
		return nil, false
	}

	return prev, true
}

// unionMixesRequires reports whether two statements, taken together, mix
// require() declarators with plain ones.
func unionMixesRequires(a, b declCounts) bool {
	requires := a.requires + b.requires

	return requires > 0 && requires < a.total+b.total
}

func (e *evaluator) emit(n *ast.VariableDeclaration, id report.MessageID, kind config.Kind, fix *report.SuggestedFix) {
	e.sink(report.Diagnostic{
		Start:       n.Idx0(),
		End:         n.Idx1(),
		ID:          id,
		BindingKind: kind.String(),
		Fix:         fix,
	})
}
