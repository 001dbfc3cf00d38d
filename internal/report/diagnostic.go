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

// Package report defines the diagnostics emitted by the rules and the text
// edits of their suggested fixes.
package report

import "github.com/t14raptor/go-fast/ast"

// TextEdit replaces the source range [Start, End) with NewText. An insertion
// has Start == End.
type TextEdit struct {
	Start, End ast.Idx
	NewText    string
}

// SuggestedFix is a set of edits resolving one diagnostic. The edits of a
// single fix never overlap.
type SuggestedFix struct {
	Message string
	Edits   []TextEdit
}

// Diagnostic is one finding on a source range. Fix is nil when no automatic
// rewrite is available; the finding still stands.
type Diagnostic struct {
	Start, End ast.Idx

	ID MessageID

	// BindingKind is the keyword of the affected declaration, interpolated
	// into the message. Empty for rules without a kind.
	BindingKind string

	Fix *SuggestedFix

	// Detail is an optional preformatted message overriding the catalog
	// entry, used by rules whose messages carry other payloads.
	Detail string
}

// Message renders the human-readable message of the diagnostic.
func (d Diagnostic) Message() string {
	if d.Detail != "" {
		return d.Detail
	}

	return d.ID.Format(d.BindingKind)
}
