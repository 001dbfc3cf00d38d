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

// Package mode defines the grouping modes of the declaration rule.
package mode

import (
	"fmt"
	"strings"
)

// Mode specifies how declarations of one kind are grouped.
type Mode uint8

const (
	// Always requires a single declaration statement per scope.
	Always Mode = iota

	// Never requires a separate statement per declared variable.
	Never

	// Consecutive permits multiple statements, but adjacent ones must be
	// merged.
	Consecutive
)

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Always:
		return []byte("always"), nil

	case Never:
		return []byte("never"), nil

	case Consecutive:
		return []byte("consecutive"), nil

	default:
		return nil, fmt.Errorf("unknown mode %d", m)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "always":
		*m = Always

	case "never":
		*m = Never

	case "consecutive":
		*m = Consecutive

	default:
		return fmt.Errorf("unknown mode %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	text, err := m.MarshalText()
	if err != nil {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}

	return string(text)
}
