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

package config_test

import (
	"testing"

	"github.com/t14raptor/go-fast/token"

	. "fillmore-labs.com/declguard/internal/config"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Always, Never, Consecutive} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("Can't parse mode %q: %v", m, err)
		}

		if got != m {
			t.Errorf("Got mode %v, want %v", got, m)
		}
	}

	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("Got no error for unknown mode")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok  token.Token
		want Kind
	}{
		{token.Var, KindVar},
		{token.Let, KindLet},
		{token.Const, KindConst},
	}

	for _, tt := range tests {
		kind, ok := KindOf(tt.tok)
		if !ok || kind != tt.want {
			t.Errorf("Got KindOf(%v) = %v, %t, want %v", tt.tok, kind, ok, tt.want)
		}
	}

	if _, ok := KindOf(token.Function); ok {
		t.Error("Got a kind for a non-declaration token")
	}
}

func TestPolicyPrecedence(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// Per-kind shape first, per-bucket shape second; the bucket override
	// wins for the field it names and leaves the other alone.
	p.SetKind(KindVar, Never)
	p.SetInitialized(Consecutive)

	if got := p.Modes(KindVar); got.Initialized != Consecutive || got.Uninitialized != Never {
		t.Errorf("Got var modes %+v, want initialized=consecutive, uninitialized=never", got)
	}

	if got := p.Modes(KindLet); got.Initialized != Consecutive || got.Uninitialized != Always {
		t.Errorf("Got let modes %+v, want initialized=consecutive, uninitialized=always", got)
	}
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(OneVarRule)

	if !b.Enabled(OneVarRule) || b.Enabled(NoUndefRule) {
		t.Error("Got wrong initial flags")
	}

	b.Enable(NoUndefRule)
	b.Disable(OneVarRule)

	if b.Enabled(OneVarRule) || !b.Enabled(NoUndefRule) {
		t.Error("Got wrong flags after update")
	}

	b.Set(OneVarRule, true)
	if !b.Enabled(OneVarRule) {
		t.Error("Got disabled flag after Set")
	}
}
