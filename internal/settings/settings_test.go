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

package settings_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	. "fillmore-labs.com/declguard/internal/settings"
)

const allSettings = `
[rules]
onevar = true
noundef = true

[onevar]
mode = "always"
var = "never"
let = "consecutive"
const = "always"
initialized = "always"
uninitialized = "never"
separate-requires = true

[noundef]
globals = ["React", "process"]
`

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[RuleSettings]().NumField() +
			reflect.TypeFor[OneVarSettings]().NumField() +
			reflect.TypeFor[NoUndefSettings]().NumField()},
		{"none", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "declguard.toml")
			if err := os.WriteFile(path, []byte(tc.settings), 0o600); err != nil {
				t.Fatalf("Can't write settings file: %v", err)
			}

			s, err := Load(path)
			if err != nil {
				t.Fatalf("Can't load settings: %v", err)
			}

			if got := len(s.Options()); got != tc.want {
				t.Errorf("Got %d options, want %d", got, tc.want)
			}
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "declguard.toml")
	if err := os.WriteFile(path, []byte("[onevar]\nmodus = \"always\"\n"), 0o600); err != nil {
		t.Fatalf("Can't write settings file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Got no error for an unknown settings key")
	}
}

func TestLoadBadMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "declguard.toml")
	if err := os.WriteFile(path, []byte("[onevar]\nmode = \"sometimes\"\n"), 0o600); err != nil {
		t.Fatalf("Can't write settings file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Got no error for an invalid mode")
	}
}
