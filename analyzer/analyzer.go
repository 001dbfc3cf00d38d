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

// Public API constants for the declguard analyzer.
const (
	name = "declguard"
	doc  = `declguard enforces a grouping policy for variable declarations`
	url  = "https://pkg.go.dev/fillmore-labs.com/declguard"
)

// Analyzer checks JavaScript sources against a declaration-grouping policy
// and a known-globals environment. A single Analyzer is immutable and safe
// for concurrent use.
type Analyzer struct {
	opts *runOptions
}

// New creates a new declguard analyzer. It allows for programmatic
// configuration using [Option], which is useful for integrating the analyzer
// into other tools; without options every rule runs with its defaults.
func New(opts ...Option) *Analyzer {
	return &Analyzer{opts: makeRunOptions(Options(opts))}
}

// Name returns the analyzer name used in reports.
func (a *Analyzer) Name() string { return name }

// Doc returns the analyzer documentation string.
func (a *Analyzer) Doc() string { return doc }

// URL returns the analyzer documentation URL.
func (a *Analyzer) URL() string { return url }
