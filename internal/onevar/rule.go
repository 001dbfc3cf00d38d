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

// Package onevar implements the declaration-grouping rule: it decides, per
// variable-declaration statement, whether the statement must be combined
// with a neighbor, split apart, or left alone, under a per-kind policy, and
// synthesizes the corresponding text-edit fixes.
package onevar

import (
	"github.com/t14raptor/go-fast/ast"

	"fillmore-labs.com/declguard/internal/config"
	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/scope"
	"fillmore-labs.com/declguard/internal/source"
)

// Check runs the rule over a parsed program, emitting diagnostics to sink in
// source order. Each call owns an independent scope-stack pair; the AST is
// never mutated.
func Check(file *source.File, prog *ast.Program, policy config.Policy, sink func(report.Diagnostic)) {
	w := &walker{
		eval: evaluator{
			policy: policy,
			scopes: scope.NewStack(),
			file:   file,
			sink:   sink,
		},
	}
	w.V = w

	prog.VisitWith(w)
}

// walker drives the traversal: it opens and closes scope records at function
// and block boundaries and hands every declaration statement, along with its
// statement-list context, to the evaluator.
type walker struct {
	ast.NoopVisitor

	eval evaluator

	// ctx is the context of the statement currently being entered. It is
	// consumed by VisitVariableDeclaration and reset before descending, so a
	// declaration nested deeper (via a function initializer or a bare
	// control-construct body) never sees the context of an outer statement.
	ctx Context
}

func (w *walker) VisitExpression(n *ast.Expression) {
	if n == nil || n.Expr == nil {
		return
	}

	n.VisitChildrenWith(w.V)
}

func (w *walker) VisitProgram(n *ast.Program) {
	w.eval.scopes.EnterFunction()
	n.VisitChildrenWith(w.V)
	w.eval.scopes.ExitFunction()
}

func (w *walker) VisitStatements(n *ast.Statements) {
	for i := range *n {
		w.ctx = Context{List: *n, Index: i}
		(*n)[i].VisitWith(w.V)
	}
	w.ctx = Context{}
}

func (w *walker) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	ctx := w.ctx
	w.ctx = Context{}

	w.eval.check(n, ctx)

	n.VisitChildrenWith(w.V)
}

func (w *walker) VisitBlockStatement(n *ast.BlockStatement) {
	w.eval.scopes.EnterBlock()
	n.VisitChildrenWith(w.V)
	w.eval.scopes.ExitBlock()
}

func (w *walker) VisitSwitchStatement(n *ast.SwitchStatement) {
	w.eval.scopes.EnterBlock()
	n.VisitChildrenWith(w.V)
	w.eval.scopes.ExitBlock()
}

func (w *walker) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	w.eval.scopes.EnterFunction()
	w.ctx = Context{}
	n.VisitChildrenWith(w.V)
	w.eval.scopes.ExitFunction()
}

func (w *walker) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	w.eval.scopes.EnterFunction()
	w.ctx = Context{}
	n.VisitChildrenWith(w.V)
	w.eval.scopes.ExitFunction()
}

func (w *walker) VisitForStatement(n *ast.ForStatement) {
	w.eval.scopes.EnterBlock()

	if n.Initializer != nil {
		if decl, ok := n.Initializer.Initializer.(*ast.VariableDeclaration); ok {
			w.ctx = Context{ForInit: true}
			decl.VisitWith(w.V)
		} else {
			n.Initializer.Initializer.VisitWith(w.V)
		}
	}

	w.ctx = Context{}
	n.Test.VisitWith(w.V)
	n.Update.VisitWith(w.V)
	w.visitBody(n.Body)

	w.eval.scopes.ExitBlock()
}

func (w *walker) VisitForInStatement(n *ast.ForInStatement) {
	w.visitForInOf(n.Into, n.Source, n.Body)
}

func (w *walker) VisitForOfStatement(n *ast.ForOfStatement) {
	w.visitForInOf(n.Into, n.Source, n.Body)
}

func (w *walker) visitForInOf(into *ast.ForInto, src *ast.Expression, body *ast.Statement) {
	w.eval.scopes.EnterBlock()

	if decl, ok := into.Into.(*ast.VariableDeclaration); ok {
		w.ctx = Context{ForInOf: true}
		decl.VisitWith(w.V)
	} else {
		into.Into.VisitWith(w.V)
	}

	w.ctx = Context{}
	src.VisitWith(w.V)
	w.visitBody(body)

	w.eval.scopes.ExitBlock()
}

func (w *walker) VisitIfStatement(n *ast.IfStatement) {
	n.Test.VisitWith(w.V)
	w.visitBody(n.Consequent)
	if n.Alternate != nil {
		w.visitBody(n.Alternate)
	}
}

func (w *walker) VisitWhileStatement(n *ast.WhileStatement) {
	n.Test.VisitWith(w.V)
	w.visitBody(n.Body)
}

func (w *walker) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	w.visitBody(n.Body)
	n.Test.VisitWith(w.V)
}

func (w *walker) VisitWithStatement(n *ast.WithStatement) {
	n.Object.VisitWith(w.V)
	w.visitBody(n.Body)
}

func (w *walker) VisitLabelledStatement(n *ast.LabelledStatement) {
	w.visitBody(n.Statement)
}

// visitBody visits a sub-statement position that is not a statement list: a
// declaration found here has no siblings to combine with and cannot be split
// without adding braces.
func (w *walker) visitBody(body *ast.Statement) {
	w.ctx = Context{}
	body.VisitWith(w.V)
}
