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

package analyzer

import (
	"context"
	"fmt"
	"runtime/trace"
	"slices"

	"github.com/t14raptor/go-fast/parser"

	"fillmore-labs.com/declguard/internal/config"
	"fillmore-labs.com/declguard/internal/noundef"
	"fillmore-labs.com/declguard/internal/onevar"
	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/source"
	"fillmore-labs.com/declguard/internal/suppress"
)

// Result holds the findings for one source file. Diagnostics are ordered by
// source position.
type Result struct {
	File        *source.File
	Diagnostics []report.Diagnostic
}

// Check parses src and runs the enabled rules over it. A parse failure is
// returned as an error; rule findings are never errors. Findings on lines
// carrying a declguard-disable directive are dropped.
func (a *Analyzer) Check(ctx context.Context, name, src string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "DeclGuard")
	defer task.End()

	prog, err := parser.ParseFile(src)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing: %w", name, err)
	}

	file := source.NewFile(name, src)

	var diagnostics []report.Diagnostic
	sink := func(d report.Diagnostic) { diagnostics = append(diagnostics, d) }

	if a.opts.rules.Enabled(config.OneVarRule) {
		trace.WithRegion(ctx, "onevar", func() {
			onevar.Check(file, prog, a.opts.policy, sink)
		})
	}

	if a.opts.rules.Enabled(config.NoUndefRule) {
		trace.WithRegion(ctx, "noundef", func() {
			noundef.Check(prog, a.opts.globals, sink)
		})
	}

	diagnostics = suppress.Filter(file, diagnostics)

	slices.SortStableFunc(diagnostics, func(a, b report.Diagnostic) int {
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}

		return int(a.End) - int(b.End)
	})

	return &Result{File: file, Diagnostics: diagnostics}, nil
}

// Fix runs Check and applies the suggested fixes, returning the rewritten
// source and the number of fixes applied. Fixes conflicting with an earlier
// fix are left for a later run.
func (a *Analyzer) Fix(ctx context.Context, name, src string) (string, int, error) {
	result, err := a.Check(ctx, name, src)
	if err != nil {
		return src, 0, err
	}

	fixed, applied := report.ApplyFixes(src, result.Diagnostics)

	return fixed, applied, nil
}
