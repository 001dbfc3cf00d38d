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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"fillmore-labs.com/declguard/analyzer"
	"fillmore-labs.com/declguard/internal/report"
	"fillmore-labs.com/declguard/internal/source"
)

var (
	locationColor = color.New(color.Bold)
	messageColor  = color.New(color.FgRed)
	idColor       = color.New(color.FgHiBlack)
	summaryColor  = color.New(color.FgRed, color.Bold)
)

func printDiagnostics(w io.Writer, result *analyzer.Result) {
	for _, d := range result.Diagnostics {
		printDiagnostic(w, result.File, d)
	}
}

func printDiagnostic(w io.Writer, file *source.File, d report.Diagnostic) {
	pos := file.Position(d.Start)

	fmt.Fprintf(w, "%s %s %s\n",
		locationColor.Sprintf("%s:%d:%d:", file.Name(), pos.Line, pos.Column),
		messageColor.Sprint(d.Message()),
		idColor.Sprintf("[%s]", d.ID),
	)
}

func printSummary(w io.Writer, findings int) {
	fmt.Fprintln(w, summaryColor.Sprintf("%d problem(s) found", findings))
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func writeFile(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}
