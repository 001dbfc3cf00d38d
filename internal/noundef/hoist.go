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

package noundef

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// hoister pre-declares the bindings a statement list contributes to the
// checker's current scope before the list is resolved. It descends into
// nested blocks for var and function declarations, which belong to the
// enclosing function, but never into nested function bodies. Lexical
// declarations are taken at the top level of the list only; each nested
// block runs its own hoist pass for its own scope.
//
// Temporal dead zones are ignored: a lexical binding is visible for the
// whole list, so a use-before-declaration does not report.
type hoister struct {
	ast.NoopVisitor

	c       *checker
	inBlock bool
}

func (h *hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if h.inBlock && n.Token != token.Var {
		return
	}

	for i := range n.List {
		h.hoistPattern(n.List[i].Target.Target)
	}
}

func (h *hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Function.Name != nil {
		h.c.scope.declare(n.Function.Name.Name)
	}
}

func (h *hoister) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if h.inBlock {
		return
	}

	if n.Class.Name != nil {
		h.c.scope.declare(n.Class.Name.Name)
	}
}

func (h *hoister) VisitBlockStatement(n *ast.BlockStatement) {
	old := h.inBlock
	h.inBlock = true
	n.VisitChildrenWith(h.V)
	h.inBlock = old
}

func (h *hoister) VisitSwitchStatement(n *ast.SwitchStatement) {
	old := h.inBlock
	h.inBlock = true
	for i := range n.Body {
		n.Body[i].Consequent.VisitWith(h.V)
	}
	h.inBlock = old
}

func (h *hoister) VisitCatchStatement(n *ast.CatchStatement) {
	n.Body.VisitWith(h.V)
}

func (h *hoister) VisitForStatement(n *ast.ForStatement) {
	if n.Initializer != nil {
		if decl, ok := n.Initializer.Initializer.(*ast.VariableDeclaration); ok && decl.Token == token.Var {
			for i := range decl.List {
				h.hoistPattern(decl.List[i].Target.Target)
			}
		}
	}
	n.Body.VisitWith(h.V)
}

func (h *hoister) VisitForInStatement(n *ast.ForInStatement) {
	h.hoistForInOf(n.Into, n.Body)
}

func (h *hoister) VisitForOfStatement(n *ast.ForOfStatement) {
	h.hoistForInOf(n.Into, n.Body)
}

func (h *hoister) hoistForInOf(into *ast.ForInto, body *ast.Statement) {
	if decl, ok := into.Into.(*ast.VariableDeclaration); ok && decl.Token == token.Var {
		for i := range decl.List {
			h.hoistPattern(decl.List[i].Target.Target)
		}
	}
	body.VisitWith(h.V)
}

func (h *hoister) VisitExpression(n *ast.Expression) {}

func (h *hoister) VisitFunctionLiteral(n *ast.FunctionLiteral) {}

func (h *hoister) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {}

func (h *hoister) VisitClassLiteral(n *ast.ClassLiteral) {}

// hoistPattern declares the names of a binding pattern without touching the
// references its defaults or computed keys contain; those are resolved by
// the main pass.
func (h *hoister) hoistPattern(e ast.Expr) {
	switch t := e.(type) {
	case nil:
	case *ast.Identifier:
		h.c.scope.declare(t.Name)

	case *ast.ArrayPattern:
		for i := range t.Elements {
			h.hoistPattern(t.Elements[i].Expr)
		}
		if t.Rest != nil {
			h.hoistPattern(t.Rest.Expr)
		}

	case *ast.ObjectPattern:
		for _, p := range t.Properties {
			switch prop := p.Prop.(type) {
			case *ast.PropertyShort:
				h.c.scope.declare(prop.Name.Name)
			case *ast.PropertyKeyed:
				h.hoistPattern(prop.Value.Expr)
			case *ast.SpreadElement:
				h.hoistPattern(prop.Expression.Expr)
			}
		}
		if t.Rest != nil {
			h.hoistPattern(t.Rest)
		}

	case *ast.AssignExpression:
		h.hoistPattern(t.Left.Expr)

	case *ast.SpreadElement:
		h.hoistPattern(t.Expression.Expr)

	case *ast.BindingTarget:
		h.hoistPattern(t.Target)
	}
}
