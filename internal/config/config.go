// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

import (
	"fmt"

	"github.com/t14raptor/go-fast/token"
)

// RuleFlags represents the individual rules of the linter.
type RuleFlags uint8

const (
	// OneVarRule enables the declaration-grouping rule.
	OneVarRule RuleFlags = 1 << iota

	// NoUndefRule enables the undefined-identifier rule.
	NoUndefRule
)

// Kind is one of the three mutually exclusive binding forms of a variable
// declaration statement.
type Kind uint8

const (
	KindVar Kind = iota
	KindLet
	KindConst

	numKinds
)

// KindOf maps a declaration keyword token to its [Kind].
func KindOf(tok token.Token) (Kind, bool) {
	switch tok {
	case token.Var:
		return KindVar, true
	case token.Let:
		return KindLet, true
	case token.Const:
		return KindConst, true
	default:
		return 0, false
	}
}

// String returns the source keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindLet:
		return "let"
	case KindConst:
		return "const"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Mode is a grouping policy mode for one initialization-state bucket of one
// binding kind.
type Mode uint8

const (
	// Always requires a single declaration statement per scope.
	Always Mode = iota

	// Never requires a separate statement per declarator.
	Never

	// Consecutive allows multiple statements, but requires adjacent ones to
	// be combined.
	Consecutive
)

// String returns the configuration token for the mode.
func (m Mode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	case Consecutive:
		return "consecutive"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a configuration token into a [Mode].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	case "consecutive":
		return Consecutive, nil
	default:
		return 0, fmt.Errorf("config: unknown mode %q", s)
	}
}

// BucketModes holds the pair of modes governing one binding kind.
type BucketModes struct {
	Initialized   Mode
	Uninitialized Mode
}

// Policy is the complete configuration of the declaration-grouping rule:
// a mode pair per binding kind plus the separate-requires flag.
type Policy struct {
	modes [numKinds]BucketModes

	// SeparateRequires forces require()-initialized declarators into their
	// own consolidation bucket.
	SeparateRequires bool
}

// DefaultPolicy returns the policy requiring a single declaration statement
// per scope for every kind and bucket.
func DefaultPolicy() Policy {
	var p Policy
	p.SetAll(Always)

	return p
}

// Modes returns the mode pair for the given kind.
func (p Policy) Modes(k Kind) BucketModes { return p.modes[k] }

// SetAll assigns the mode to both buckets of every kind.
func (p *Policy) SetAll(m Mode) {
	for k := range p.modes {
		p.modes[k] = BucketModes{Initialized: m, Uninitialized: m}
	}
}

// SetKind assigns the mode to both buckets of a single kind.
func (p *Policy) SetKind(k Kind, m Mode) {
	p.modes[k] = BucketModes{Initialized: m, Uninitialized: m}
}

// SetInitialized assigns the mode to the initialized bucket of every kind.
// Applied after [Policy.SetKind], this gives the per-bucket shape precedence
// over the per-kind shape.
func (p *Policy) SetInitialized(m Mode) {
	for k := range p.modes {
		p.modes[k].Initialized = m
	}
}

// SetUninitialized assigns the mode to the uninitialized bucket of every kind.
func (p *Policy) SetUninitialized(m Mode) {
	for k := range p.modes {
		p.modes[k].Uninitialized = m
	}
}
