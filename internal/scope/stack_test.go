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

package scope_test

import (
	"testing"

	"fillmore-labs.com/declguard/internal/config"
	. "fillmore-labs.com/declguard/internal/scope"
)

func TestVarScopesSurviveBlocks(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.EnterFunction()

	s.Current(config.KindVar).Initialized = true

	s.EnterBlock()
	if !s.Current(config.KindVar).Initialized {
		t.Error("Got fresh var record inside block, want the function record")
	}
	s.ExitBlock()

	s.ExitFunction()
}

func TestLexicalScopesResetPerBlock(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.EnterFunction()

	s.Current(config.KindLet).Uninitialized = true
	s.Current(config.KindConst).Initialized = true

	s.EnterBlock()
	if s.Current(config.KindLet).Uninitialized || s.Current(config.KindConst).Initialized {
		t.Error("Got inherited lexical records inside block, want fresh ones")
	}

	s.Current(config.KindLet).Uninitialized = true
	s.ExitBlock()

	if !s.Current(config.KindLet).Uninitialized {
		t.Error("Got reset outer record after leaving block")
	}

	s.ExitFunction()
}

func TestFunctionBoundaryIsBlockBoundary(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.EnterFunction()

	s.Current(config.KindVar).Required = true
	s.Current(config.KindLet).Initialized = true

	s.EnterFunction()
	if s.Current(config.KindVar).Required || s.Current(config.KindLet).Initialized {
		t.Error("Got inherited records inside nested function, want fresh ones")
	}
	s.ExitFunction()

	if !s.Current(config.KindVar).Required || !s.Current(config.KindLet).Initialized {
		t.Error("Got reset outer records after leaving nested function")
	}

	s.ExitFunction()
}
