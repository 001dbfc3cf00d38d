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

// Package testsource provides utilities for parsing JavaScript sources in
// tests, handling the common boilerplate of the rule tests.
package testsource

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/parser"

	"fillmore-labs.com/declguard/internal/source"
)

// Parse parses a JavaScript fragment and pairs it with its source accessor.
// The test fails when the fragment does not parse.
func Parse(tb testing.TB, src string) (*source.File, *ast.Program) {
	tb.Helper()

	prog, err := parser.ParseFile(src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return source.NewFile("test.js", src), prog
}
