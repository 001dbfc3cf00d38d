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

// Package settings loads file-based configuration and converts it into
// analyzer options.
package settings

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/declguard/analyzer"
	"fillmore-labs.com/declguard/analyzer/mode"
)

// Settings represents the configuration file of a declguard run. Absent
// fields keep their defaults.
type Settings struct {
	Rules   RuleSettings    `toml:"rules"`
	OneVar  OneVarSettings  `toml:"onevar"`
	NoUndef NoUndefSettings `toml:"noundef"`
}

// RuleSettings enables or disables individual rules.
type RuleSettings struct {
	// OneVar enables the declaration-grouping rule.
	OneVar *bool `toml:"onevar"`
	// NoUndef enables the undefined-identifier rule.
	NoUndef *bool `toml:"noundef"`
}

// OneVarSettings configures the declaration-grouping rule. The single Mode
// is the base, the per-kind modes refine it, and the per-initialization
// modes override both.
type OneVarSettings struct {
	// Mode sets the grouping mode for every kind.
	Mode *mode.Mode `toml:"mode"`
	// Var sets the grouping mode for var declarations.
	Var *mode.Mode `toml:"var"`
	// Let sets the grouping mode for let declarations.
	Let *mode.Mode `toml:"let"`
	// Const sets the grouping mode for const declarations.
	Const *mode.Mode `toml:"const"`
	// Initialized sets the grouping mode for initialized variables of every kind.
	Initialized *mode.Mode `toml:"initialized"`
	// Uninitialized sets the grouping mode for uninitialized variables of every kind.
	Uninitialized *mode.Mode `toml:"uninitialized"`
	// SeparateRequires keeps require()-initialized variables in their own statements.
	SeparateRequires *bool `toml:"separate-requires"`
}

// NoUndefSettings configures the undefined-identifier rule.
type NoUndefSettings struct {
	// Globals lists additional known global identifiers.
	Globals []string `toml:"globals"`
}

// Load reads the TOML configuration file at path.
func Load(path string) (Settings, error) {
	var s Settings

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("settings: unknown key %q", undecoded[0].String())
	}

	return s, nil
}

// Options converts [Settings] into a list of [analyzer.Option]. Settings are
// applied only when explicitly set; the order realizes the documented
// precedence of the grouping modes.
func (s Settings) Options() analyzer.Options {
	var opts analyzer.Options

	opts = appendOption(opts, s.OneVar.Mode, analyzer.WithMode)
	opts = appendOption(opts, s.OneVar.Var, analyzer.WithVarMode)
	opts = appendOption(opts, s.OneVar.Let, analyzer.WithLetMode)
	opts = appendOption(opts, s.OneVar.Const, analyzer.WithConstMode)
	opts = appendOption(opts, s.OneVar.Initialized, analyzer.WithInitializedMode)
	opts = appendOption(opts, s.OneVar.Uninitialized, analyzer.WithUninitializedMode)
	opts = appendOption(opts, s.OneVar.SeparateRequires, analyzer.WithSeparateRequires)

	opts = appendOption(opts, s.Rules.OneVar, analyzer.WithOneVar)
	opts = appendOption(opts, s.Rules.NoUndef, analyzer.WithNoUndef)

	if len(s.NoUndef.Globals) > 0 {
		opts = append(opts, analyzer.WithGlobals(s.NoUndef.Globals...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Options] list.
func appendOption[T any](opts analyzer.Options, value *T, constructor func(T) analyzer.Option) analyzer.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
