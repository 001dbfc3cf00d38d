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

package main

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/declguard/analyzer"
	"fillmore-labs.com/declguard/analyzer/mode"
	"fillmore-labs.com/declguard/internal/settings"
)

// registerRuleFlags adds the rule configuration flags shared by check and fix.
func registerRuleFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "always", "grouping mode for all kinds (always|never|consecutive)")
	cmd.Flags().String("var", "", "grouping mode for var declarations")
	cmd.Flags().String("let", "", "grouping mode for let declarations")
	cmd.Flags().String("const", "", "grouping mode for const declarations")
	cmd.Flags().String("initialized", "", "grouping mode for initialized variables")
	cmd.Flags().String("uninitialized", "", "grouping mode for uninitialized variables")
	cmd.Flags().Bool("separate-requires", false, "keep require() declarations separate")
	cmd.Flags().Bool("onevar", true, "enable the declaration-grouping rule")
	cmd.Flags().Bool("noundef", true, "enable the undefined-identifier rule")
	cmd.Flags().StringSlice("globals", nil, "additional global identifiers")
}

// buildOptions assembles analyzer options from the configuration file and the
// command flags. Flags override the file, but only when set explicitly.
func buildOptions(cmd *cobra.Command) (analyzer.Options, error) {
	var opts analyzer.Options

	if path, err := cmd.Root().PersistentFlags().GetString("config"); err != nil {
		return nil, err
	} else if path != "" {
		s, err := settings.Load(path)
		if err != nil {
			return nil, err
		}

		opts = append(opts, s.Options()...)
	}

	modeFlag := func(name string, with func(mode.Mode) analyzer.Option) error {
		if !cmd.Flags().Changed(name) {
			return nil
		}

		text, err := cmd.Flags().GetString(name)
		if err != nil {
			return err
		}

		var m mode.Mode
		if err := m.UnmarshalText([]byte(text)); err != nil {
			return err
		}

		opts = append(opts, with(m))

		return nil
	}

	boolFlag := func(name string, with func(bool) analyzer.Option) error {
		if !cmd.Flags().Changed(name) {
			return nil
		}

		value, err := cmd.Flags().GetBool(name)
		if err != nil {
			return err
		}

		opts = append(opts, with(value))

		return nil
	}

	for _, f := range []struct {
		name string
		with func(mode.Mode) analyzer.Option
	}{
		{"mode", analyzer.WithMode},
		{"var", analyzer.WithVarMode},
		{"let", analyzer.WithLetMode},
		{"const", analyzer.WithConstMode},
		{"initialized", analyzer.WithInitializedMode},
		{"uninitialized", analyzer.WithUninitializedMode},
	} {
		if err := modeFlag(f.name, f.with); err != nil {
			return nil, err
		}
	}

	for _, f := range []struct {
		name string
		with func(bool) analyzer.Option
	}{
		{"separate-requires", analyzer.WithSeparateRequires},
		{"onevar", analyzer.WithOneVar},
		{"noundef", analyzer.WithNoUndef},
	} {
		if err := boolFlag(f.name, f.with); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("globals") {
		globals, err := cmd.Flags().GetStringSlice("globals")
		if err != nil {
			return nil, err
		}

		opts = append(opts, analyzer.WithGlobals(globals...))
	}

	slog.Default().LogAttrs(cmd.Context(), slog.LevelDebug, "configuration", opts.LogAttr())

	return opts, nil
}

// listSources expands the arguments into a sorted list of JavaScript files.
// Directories are walked recursively.
func listSources(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(path)) {
			case ".js", ".mjs", ".cjs":
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)

	return files, nil
}

// fileResult pairs one source file with the outcome of its run.
type fileResult struct {
	path   string
	result *analyzer.Result
	err    error
}

// runFiles checks the files in parallel, preserving their order in the
// returned slice.
func runFiles(ctx context.Context, a *analyzer.Analyzer, files []string, jobs int) []fileResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			results[i] = checkFile(ctx, a, path)

			return nil
		})
	}

	_ = g.Wait() // errors are carried per file

	return results
}

func checkFile(ctx context.Context, a *analyzer.Analyzer, path string) fileResult {
	src, err := readFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	result, err := a.Check(ctx, path, src)

	return fileResult{path: path, result: result, err: err}
}
