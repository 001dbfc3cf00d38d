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

package mode_test

import (
	"testing"

	. "fillmore-labs.com/declguard/analyzer/mode"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Always, Never, Consecutive} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("Can't marshal mode %v: %v", m, err)
		}

		var got Mode
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("Can't unmarshal %q: %v", text, err)
		}

		if got != m {
			t.Errorf("Got mode %v, want %v", got, m)
		}
	}
}

func TestUnmarshalDefault(t *testing.T) {
	t.Parallel()

	var m Mode
	if err := m.UnmarshalText(nil); err != nil {
		t.Fatalf("Can't unmarshal empty text: %v", err)
	}

	if m != Always {
		t.Errorf("Got mode %v, want %v", m, Always)
	}
}

func TestUnmarshalUnknown(t *testing.T) {
	t.Parallel()

	var m Mode
	if err := m.UnmarshalText([]byte("sometimes")); err == nil {
		t.Error("Got no error for unknown mode")
	}
}
