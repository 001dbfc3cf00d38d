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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fillmore-labs.com/declguard/analyzer"
	"fillmore-labs.com/declguard/internal/report"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.js|directory>...",
	Short: "Apply suggested fixes to the sources in place",
	Long: `Fix rewrites the sources, applying the suggested fixes of the
declaration-grouping rule. Fixes conflicting with an already applied fix are
skipped; rerun to pick them up. Findings without a fix are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	registerRuleFlags(fixCmd)
	fixCmd.Flags().Bool("dry-run", false, "preview changes without modifying files")
}

func runFix(cmd *cobra.Command, args []string) error {
	if err := setupOutput(cmd); err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	files, err := listSources(args)
	if err != nil {
		return err
	}

	a := analyzer.New(opts...)

	applied := 0
	remaining := 0

	var errs []error

	for _, r := range runFiles(cmd.Context(), a, files, jobs) {
		if r.err != nil {
			errs = append(errs, r.err)

			continue
		}

		fixed, n := report.ApplyFixes(r.result.File.Src(), r.result.Diagnostics)
		if n > 0 && !dryRun {
			if err := writeFile(r.path, fixed); err != nil {
				errs = append(errs, err)

				continue
			}
		}
		applied += n

		// Report what a rewrite cannot resolve.
		for _, d := range r.result.Diagnostics {
			if d.Fix == nil {
				printDiagnostic(cmd.OutOrStdout(), r.result.File, d)
				remaining++
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d fix(es) applied\n", applied)

	if remaining > 0 {
		return errFindings
	}

	return nil
}
