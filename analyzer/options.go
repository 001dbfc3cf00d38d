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

import (
	"log/slog"

	"fillmore-labs.com/declguard/analyzer/mode"
	"fillmore-labs.com/declguard/internal/config"
)

// Option configures specific behavior of a [New] declguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

func internalMode(m mode.Mode) config.Mode {
	switch m {
	case mode.Never:
		return config.Never

	case mode.Consecutive:
		return config.Consecutive

	default:
		return config.Always
	}
}

// WithMode is an [Option] to set the grouping mode for all declaration kinds
// and both initialization states.
func WithMode(m mode.Mode) Option { return modeOption{mode: m} }

type modeOption struct{ mode mode.Mode }

func (o modeOption) apply(r *runOptions) {
	r.policy.SetAll(internalMode(o.mode))
}

func (o modeOption) LogAttr() slog.Attr {
	return slog.Any("mode", o.mode)
}

// WithVarMode is an [Option] to set the grouping mode for var declarations.
func WithVarMode(m mode.Mode) Option { return kindModeOption{kind: config.KindVar, mode: m} }

// WithLetMode is an [Option] to set the grouping mode for let declarations.
func WithLetMode(m mode.Mode) Option { return kindModeOption{kind: config.KindLet, mode: m} }

// WithConstMode is an [Option] to set the grouping mode for const declarations.
func WithConstMode(m mode.Mode) Option { return kindModeOption{kind: config.KindConst, mode: m} }

type kindModeOption struct {
	kind config.Kind
	mode mode.Mode
}

func (o kindModeOption) apply(r *runOptions) {
	r.policy.SetKind(o.kind, internalMode(o.mode))
}

func (o kindModeOption) LogAttr() slog.Attr {
	return slog.Group(o.kind.String(), slog.Any("mode", o.mode))
}

// WithInitializedMode is an [Option] to set the grouping mode for initialized
// variables of every kind. It overrides the per-kind modes.
func WithInitializedMode(m mode.Mode) Option { return initializedOption{mode: m} }

type initializedOption struct{ mode mode.Mode }

func (o initializedOption) apply(r *runOptions) {
	r.policy.SetInitialized(internalMode(o.mode))
}

func (o initializedOption) LogAttr() slog.Attr {
	return slog.Any("initialized", o.mode)
}

// WithUninitializedMode is an [Option] to set the grouping mode for
// uninitialized variables of every kind. It overrides the per-kind modes.
func WithUninitializedMode(m mode.Mode) Option { return uninitializedOption{mode: m} }

type uninitializedOption struct{ mode mode.Mode }

func (o uninitializedOption) apply(r *runOptions) {
	r.policy.SetUninitialized(internalMode(o.mode))
}

func (o uninitializedOption) LogAttr() slog.Attr {
	return slog.Any("uninitialized", o.mode)
}

// WithSeparateRequires is an [Option] to require that require()-initialized
// variables are never grouped with other variables.
func WithSeparateRequires(separate bool) Option { return separateRequiresOption{separate: separate} }

type separateRequiresOption struct{ separate bool }

func (o separateRequiresOption) apply(r *runOptions) {
	r.policy.SeparateRequires = o.separate
}

func (o separateRequiresOption) LogAttr() slog.Attr {
	return slog.Bool("separateRequires", o.separate)
}

// WithOneVar is an [Option] to configure whether the declaration-grouping
// rule is enabled.
func WithOneVar(enabled bool) Option { return oneVarOption{enabled: enabled} }

type oneVarOption struct{ enabled bool }

func (o oneVarOption) apply(r *runOptions) {
	r.rules.Set(config.OneVarRule, o.enabled)
}

func (o oneVarOption) LogAttr() slog.Attr {
	return slog.Bool("onevar", o.enabled)
}

// WithNoUndef is an [Option] to configure whether the undefined-identifier
// rule is enabled.
func WithNoUndef(enabled bool) Option { return noUndefOption{enabled: enabled} }

type noUndefOption struct{ enabled bool }

func (o noUndefOption) apply(r *runOptions) {
	r.rules.Set(config.NoUndefRule, o.enabled)
}

func (o noUndefOption) LogAttr() slog.Attr {
	return slog.Bool("noundef", o.enabled)
}

// WithGlobals is an [Option] to add identifiers to the known-globals
// environment of the undefined-identifier rule.
func WithGlobals(globals ...string) Option { return globalsOption{globals: globals} }

type globalsOption struct{ globals []string }

func (o globalsOption) apply(r *runOptions) {
	r.globals = append(r.globals, o.globals...)
}

func (o globalsOption) LogAttr() slog.Attr {
	return slog.Any("globals", o.globals)
}
