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

// Package noundef implements the undefined-identifier rule: every identifier
// read or written in expression position must resolve to a declaration in an
// enclosing scope or to a known global.
package noundef

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"

	"fillmore-labs.com/declguard/internal/report"
)

// Check runs the rule over a parsed program, emitting one diagnostic per
// unresolved reference to sink in source order. The extra globals are added
// to the built-in environment for this run only.
func Check(prog *ast.Program, globals []string, sink func(report.Diagnostic)) {
	c := &checker{
		globals: make(map[string]struct{}, len(globals)),
		sink:    sink,
	}
	for _, g := range globals {
		c.globals[g] = struct{}{}
	}
	c.V = c

	prog.VisitWith(c)
}

// envScope is one link of the scope chain built during traversal. Function
// scopes additionally receive the var and function declarations hoisted out
// of their nested statement lists.
type envScope struct {
	parent   *envScope
	function bool
	names    map[string]struct{}
}

func (s *envScope) declare(name string) {
	s.names[name] = struct{}{}
}

func (s *envScope) resolves(name string) bool {
	for scope := s; scope != nil; scope = scope.parent {
		if _, ok := scope.names[name]; ok {
			return true
		}
	}

	return false
}

// checker walks the program with a scope chain. Binding positions are
// consumed structurally before traversal reaches them, so every identifier
// the generic walk visits is a reference and must resolve.
type checker struct {
	ast.NoopVisitor

	scope   *envScope
	globals map[string]struct{}
	sink    func(report.Diagnostic)
}

func (c *checker) push(function bool) {
	c.scope = &envScope{parent: c.scope, function: function, names: make(map[string]struct{})}
}

func (c *checker) pop() {
	c.scope = c.scope.parent
}

func (c *checker) resolves(name string) bool {
	if c.scope.resolves(name) {
		return true
	}
	if _, ok := c.globals[name]; ok {
		return true
	}
	_, ok := builtinGlobals[name]

	return ok
}

func (c *checker) VisitExpression(n *ast.Expression) {
	if n == nil || n.Expr == nil {
		return
	}

	n.VisitChildrenWith(c.V)
}

func (c *checker) VisitIdentifier(n *ast.Identifier) {
	if c.resolves(n.Name) {
		return
	}

	c.sink(report.Diagnostic{
		Start:       n.Idx,
		End:         n.Idx + ast.Idx(len(n.Name)),
		ID:          report.Undef,
		BindingKind: n.Name,
	})
}

func (c *checker) VisitProgram(n *ast.Program) {
	c.push(true)
	n.VisitChildrenWith(c.V)
	c.pop()
}

// VisitStatements hoists the declarations of the list into the current scope
// before resolving it, so forward references within the list do not report.
func (c *checker) VisitStatements(n *ast.Statements) {
	h := &hoister{c: c}
	h.V = h
	n.VisitWith(h)

	n.VisitChildrenWith(c.V)
}

func (c *checker) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for i := range n.List {
		c.bindTarget(n.List[i].Target)
		if n.List[i].Initializer != nil {
			n.List[i].Initializer.VisitWith(c.V)
		}
	}
}

func (c *checker) VisitBlockStatement(n *ast.BlockStatement) {
	c.push(false)
	n.VisitChildrenWith(c.V)
	c.pop()
}

func (c *checker) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Discriminant.VisitWith(c.V)

	c.push(false)
	for i := range n.Body {
		n.Body[i].VisitWith(c.V)
	}
	c.pop()
}

func (c *checker) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	c.push(true)
	c.scope.declare("arguments")

	// A function expression's name is visible inside the function only; for
	// a declaration the outer binding comes from the hoist pass.
	if n.Name != nil {
		c.scope.declare(n.Name.Name)
	}

	c.bindParameters(&n.ParameterList)
	n.Body.VisitChildrenWith(c.V)

	c.pop()
}

func (c *checker) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	c.push(true)

	c.bindParameters(&n.ParameterList)
	switch body := n.Body.Body.(type) {
	case *ast.BlockStatement:
		body.VisitChildrenWith(c.V)
	case *ast.Expression:
		body.VisitWith(c.V)
	}

	c.pop()
}

func (c *checker) VisitClassLiteral(n *ast.ClassLiteral) {
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(c.V)
	}

	c.push(false)
	if n.Name != nil {
		c.scope.declare(n.Name.Name)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(c.V)
	}
	c.pop()
}

func (c *checker) VisitCatchStatement(n *ast.CatchStatement) {
	c.push(false)
	if n.Parameter != nil {
		c.bindTarget(n.Parameter)
	}
	n.Body.VisitWith(c.V)
	c.pop()
}

func (c *checker) VisitForStatement(n *ast.ForStatement) {
	c.push(false)

	if n.Initializer != nil {
		n.Initializer.Initializer.VisitWith(c.V)
	}
	n.Test.VisitWith(c.V)
	n.Update.VisitWith(c.V)
	n.Body.VisitWith(c.V)

	c.pop()
}

func (c *checker) VisitForInStatement(n *ast.ForInStatement) {
	c.visitForInOf(n.Into, n.Source, n.Body)
}

func (c *checker) VisitForOfStatement(n *ast.ForOfStatement) {
	c.visitForInOf(n.Into, n.Source, n.Body)
}

func (c *checker) visitForInOf(into *ast.ForInto, src *ast.Expression, body *ast.Statement) {
	c.push(false)

	into.Into.VisitWith(c.V)
	src.VisitWith(c.V)
	body.VisitWith(c.V)

	c.pop()
}

// Labels are their own namespace; the identifiers naming them never resolve
// against the variable environment.
func (c *checker) VisitLabelledStatement(n *ast.LabelledStatement) {
	n.Statement.VisitWith(c.V)
}

func (c *checker) VisitBreakStatement(n *ast.BreakStatement) {}

func (c *checker) VisitContinueStatement(n *ast.ContinueStatement) {}

func (c *checker) VisitPrivateIdentifier(n *ast.PrivateIdentifier) {}

// VisitUnaryExpression exempts `typeof x` on a bare identifier: probing for
// an optional global through typeof is well-defined and idiomatic.
func (c *checker) VisitUnaryExpression(n *ast.UnaryExpression) {
	if n.Operator == token.Typeof {
		if _, ok := n.Operand.Expr.(*ast.Identifier); ok {
			return
		}
	}

	n.VisitChildrenWith(c.V)
}

func (c *checker) bindParameters(params *ast.ParameterList) {
	for i := range params.List {
		c.bindTarget(params.List[i].Target)
		if params.List[i].Initializer != nil {
			params.List[i].Initializer.VisitWith(c.V)
		}
	}
	if params.Rest != nil {
		c.bindPattern(params.Rest)
	}
}

func (c *checker) bindTarget(t *ast.BindingTarget) {
	c.bindPattern(t.Target)
}

// bindPattern declares every name a binding pattern introduces into the
// current scope. Defaults and computed keys inside the pattern are ordinary
// references and go back through the generic walk.
func (c *checker) bindPattern(e ast.Expr) {
	switch t := e.(type) {
	case nil:
	case *ast.Identifier:
		c.scope.declare(t.Name)

	case *ast.ArrayPattern:
		for i := range t.Elements {
			c.bindPattern(t.Elements[i].Expr)
		}
		if t.Rest != nil {
			c.bindPattern(t.Rest.Expr)
		}

	case *ast.ObjectPattern:
		for _, p := range t.Properties {
			switch prop := p.Prop.(type) {
			case *ast.PropertyShort:
				c.scope.declare(prop.Name.Name)
				if prop.Initializer != nil {
					prop.Initializer.VisitWith(c.V)
				}
			case *ast.PropertyKeyed:
				if prop.Computed {
					prop.Key.VisitWith(c.V)
				}
				c.bindPattern(prop.Value.Expr)
			case *ast.SpreadElement:
				c.bindPattern(prop.Expression.Expr)
			}
		}
		if t.Rest != nil {
			c.bindPattern(t.Rest)
		}

	case *ast.AssignExpression:
		c.bindPattern(t.Left.Expr)
		t.Right.VisitWith(c.V)

	case *ast.SpreadElement:
		c.bindPattern(t.Expression.Expr)

	case *ast.BindingTarget:
		c.bindPattern(t.Target)

	default:
		// Member expressions and other non-binding targets reference.
		if v, ok := e.(ast.VisitableNode); ok {
			v.VisitWith(c.V)
		}
	}
}
