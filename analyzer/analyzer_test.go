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

package analyzer_test

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/declguard/analyzer"
	"fillmore-labs.com/declguard/analyzer/mode"
)

// TestAnalyzer runs the archives under testdata: each holds an input.js,
// optional options, the expected diagnostics and an optional fixed.js with
// the source after applying all fixes.
func TestAnalyzer(t *testing.T) {
	t.Parallel()

	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("Can't list testdata: %v", err)
	}

	if len(archives) == 0 {
		t.Fatal("Got no test archives")
	}

	for _, archive := range archives {
		name := strings.TrimSuffix(filepath.Base(archive), ".txtar")

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(archive)
			if err != nil {
				t.Fatalf("Can't parse archive: %v", err)
			}

			var input, diagnostics, fixed string
			var opts []Option

			for _, f := range ar.Files {
				switch f.Name {
				case "input.js":
					input = string(f.Data)

				case "options":
					opts = parseOptions(t, f.Data)

				case "diagnostics":
					diagnostics = string(f.Data)

				case "fixed.js":
					fixed = string(f.Data)

				default:
					t.Fatalf("Unknown archive file %q", f.Name)
				}
			}

			a := New(opts...)

			result, err := a.Check(t.Context(), name+".js", input)
			if err != nil {
				t.Fatalf("Can't check source: %v", err)
			}

			if got := formatDiagnostics(result); got != diagnostics {
				t.Errorf("Got diagnostics:\n%swant:\n%s", got, diagnostics)
			}

			if fixed == "" {
				return
			}

			gotFixed, _, err := a.Fix(t.Context(), name+".js", input)
			if err != nil {
				t.Fatalf("Can't fix source: %v", err)
			}

			if gotFixed != fixed {
				t.Errorf("Got fixed source:\n%swant:\n%s", gotFixed, fixed)
			}
		})
	}
}

func TestCheckParseError(t *testing.T) {
	t.Parallel()

	a := New()

	if _, err := a.Check(t.Context(), "broken.js", "var = ;"); err == nil {
		t.Error("Got no error for unparsable source")
	}
}

func formatDiagnostics(result *Result) string {
	var sb strings.Builder

	for _, d := range result.Diagnostics {
		pos := result.File.Position(d.Start)
		fmt.Fprintf(&sb, "%d:%d: %s [%s]\n", pos.Line, pos.Column, d.Message(), d.ID)
	}

	return sb.String()
}

// parseOptions reads "key = value" lines from an archive's options file.
func parseOptions(tb testing.TB, data []byte) []Option {
	tb.Helper()

	modeOptions := map[string]func(mode.Mode) Option{
		"mode":          WithMode,
		"var":           WithVarMode,
		"let":           WithLetMode,
		"const":         WithConstMode,
		"initialized":   WithInitializedMode,
		"uninitialized": WithUninitializedMode,
	}

	boolOptions := map[string]func(bool) Option{
		"separate-requires": WithSeparateRequires,
		"onevar":            WithOneVar,
		"noundef":           WithNoUndef,
	}

	var opts []Option

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			tb.Fatalf("Malformed option line %q", line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch {
		case modeOptions[key] != nil:
			var m mode.Mode
			if err := m.UnmarshalText([]byte(value)); err != nil {
				tb.Fatalf("Can't parse mode %q: %v", value, err)
			}
			opts = append(opts, modeOptions[key](m))

		case boolOptions[key] != nil:
			b, err := strconv.ParseBool(value)
			if err != nil {
				tb.Fatalf("Can't parse bool %q: %v", value, err)
			}
			opts = append(opts, boolOptions[key](b))

		case key == "globals":
			opts = append(opts, WithGlobals(strings.Split(value, ",")...))

		default:
			tb.Fatalf("Unknown option %q", key)
		}
	}

	return opts
}
