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

	"github.com/spf13/cobra"

	"fillmore-labs.com/declguard/analyzer"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.js|directory>...",
	Short: "Report declaration-grouping violations and undefined identifiers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	registerRuleFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := setupOutput(cmd); err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
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

	findings := 0

	var errs []error

	for _, r := range runFiles(cmd.Context(), a, files, jobs) {
		if r.err != nil {
			errs = append(errs, r.err)

			continue
		}

		findings += len(r.result.Diagnostics)
		printDiagnostics(cmd.OutOrStdout(), r.result)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if findings > 0 {
		printSummary(cmd.OutOrStdout(), findings)

		return errFindings
	}

	return nil
}
