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

import "github.com/t14raptor/go-fast/ast"

// declCounts summarizes the declarators of one declaration statement.
type declCounts struct {
	initialized   int
	uninitialized int
	requires      int
	total         int
}

// classify counts initialized and uninitialized declarators and the subset
// whose initializer is a require() call.
func classify(list ast.VariableDeclarators) declCounts {
	var c declCounts

	c.total = len(list)
	for i := range list {
		if list[i].Initializer == nil {
			c.uninitialized++

			continue
		}

		c.initialized++
		if isRequire(&list[i]) {
			c.requires++
		}
	}

	return c
}

// someRequires reports whether at least one declarator is require()-initialized.
func (c declCounts) someRequires() bool { return c.requires > 0 }

// allRequires reports whether every declarator is require()-initialized.
func (c declCounts) allRequires() bool { return c.requires == c.total }

// mixedRequires reports whether the statement mixes require()-initialized
// declarators with other declarators.
func (c declCounts) mixedRequires() bool { return c.someRequires() && !c.allRequires() }

// allInitializedRequire reports whether every initialized declarator is a
// require() call. Uninitialized declarators are ignored.
func (c declCounts) allInitializedRequire() bool {
	return c.requires > 0 && c.requires == c.initialized
}

// isRequire detects a declarator initialized by a direct call to the
// well-known module loader, `x = require("...")`.
func isRequire(d *ast.VariableDeclarator) bool {
	if d.Initializer == nil {
		return false
	}

	call, ok := d.Initializer.Expr.(*ast.CallExpression)
	if !ok {
		return false
	}

	callee, ok := call.Callee.Expr.(*ast.Identifier)

	return ok && callee.Name == "require"
}
