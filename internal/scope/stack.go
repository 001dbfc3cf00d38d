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

// Package scope tracks which declaration groups have already been claimed in
// the lexical regions of a traversal.
//
// Two parallel stacks are maintained: function-level records for var bindings
// and block-level records for let and const bindings. A function boundary is
// also a block boundary. The stacks are owned by a single traversal instance;
// enter and exit calls must pair LIFO, driven by the visitor.
package scope

import "fillmore-labs.com/declguard/internal/config"

// Record is the per-region bookkeeping consulted under the "always" policy
// mode. A flag is set once the corresponding group has been claimed by a
// prior declaration statement in the region.
type Record struct {
	// Initialized is set when a statement with initialized declarators has
	// been seen.
	Initialized bool

	// Uninitialized is set when a statement with uninitialized declarators
	// has been seen.
	Uninitialized bool

	// Required is set when a require()-initialized statement has been seen.
	Required bool
}

// blockRecord holds one record per block-scoped binding kind.
type blockRecord struct {
	let      Record
	constant Record
}

// Stack is the pair of scope-record stacks for one traversal.
type Stack struct {
	functions []Record
	blocks    []blockRecord
}

// NewStack returns an empty stack pair. The caller must enter the outermost
// function scope (the program) before consulting records.
func NewStack() *Stack {
	return &Stack{}
}

// EnterFunction pushes a fresh function record and a fresh block record,
// since a function boundary is also a block boundary.
func (s *Stack) EnterFunction() {
	s.functions = append(s.functions, Record{})
	s.EnterBlock()
}

// ExitFunction pops the records pushed by the matching [Stack.EnterFunction].
func (s *Stack) ExitFunction() {
	s.ExitBlock()
	s.functions = s.functions[:len(s.functions)-1]
}

// EnterBlock pushes a fresh block record.
func (s *Stack) EnterBlock() {
	s.blocks = append(s.blocks, blockRecord{})
}

// ExitBlock pops the record pushed by the matching [Stack.EnterBlock].
func (s *Stack) ExitBlock() {
	s.blocks = s.blocks[:len(s.blocks)-1]
}

// Current returns the record governing the given binding kind: the top
// function record for var, the matching field of the top block record for
// let and const.
func (s *Stack) Current(kind config.Kind) *Record {
	switch kind {
	case config.KindVar:
		return &s.functions[len(s.functions)-1]
	case config.KindLet:
		return &s.blocks[len(s.blocks)-1].let
	default:
		return &s.blocks[len(s.blocks)-1].constant
	}
}
