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

package report

import "fmt"

// MessageID identifies one entry of the closed message catalog.
type MessageID uint8

const (
	// Combine asks to merge the statement into the previous declaration.
	Combine MessageID = iota

	// CombineInitialized asks to merge the initialized declarators into the
	// previous declaration.
	CombineInitialized

	// CombineUninitialized asks to merge the uninitialized declarators into
	// the previous declaration.
	CombineUninitialized

	// Split asks to break the statement into one statement per declarator.
	Split

	// SplitInitialized asks to split off the initialized declarators.
	SplitInitialized

	// SplitUninitialized asks to split off the uninitialized declarators.
	SplitUninitialized

	// SplitRequires asks to keep require()-initialized declarators in their
	// own statement.
	SplitRequires

	// Undef reports a reference to an undeclared identifier.
	Undef
)

// String returns the catalog identifier, the stable name used in test
// expectations and machine-readable output.
func (id MessageID) String() string {
	switch id {
	case Combine:
		return "combine"
	case CombineInitialized:
		return "combineInitialized"
	case CombineUninitialized:
		return "combineUninitialized"
	case Split:
		return "split"
	case SplitInitialized:
		return "splitInitialized"
	case SplitUninitialized:
		return "splitUninitialized"
	case SplitRequires:
		return "splitRequires"
	case Undef:
		return "undef"
	default:
		return fmt.Sprintf("message(%d)", uint8(id))
	}
}

// Rule returns the name of the rule emitting the message, the name used in
// disable directives and configuration.
func (id MessageID) Rule() string {
	if id == Undef {
		return "noundef"
	}

	return "onevar"
}

// Format renders the message with the binding-kind payload interpolated.
func (id MessageID) Format(kind string) string {
	switch id {
	case Combine:
		return fmt.Sprintf("Combine this with the previous '%s' statement.", kind)
	case CombineInitialized:
		return fmt.Sprintf("Combine this with the previous '%s' statement with initialized variables.", kind)
	case CombineUninitialized:
		return fmt.Sprintf("Combine this with the previous '%s' statement with uninitialized variables.", kind)
	case Split:
		return fmt.Sprintf("Split '%s' declarations into multiple statements.", kind)
	case SplitInitialized:
		return fmt.Sprintf("Split initialized '%s' declarations into multiple statements.", kind)
	case SplitUninitialized:
		return fmt.Sprintf("Split uninitialized '%s' declarations into multiple statements.", kind)
	case SplitRequires:
		return "Split requires to be separated into a single block."
	case Undef:
		return fmt.Sprintf("'%s' is not defined.", kind)
	default:
		return id.String()
	}
}
