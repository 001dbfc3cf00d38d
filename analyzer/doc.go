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

// Package analyzer checks JavaScript sources for declaration statements that
// violate a configurable grouping policy and for references to undefined
// identifiers.
//
// The grouping policy decides, independently per declaration kind (var, let,
// const) and per initialization state, whether variables must be combined
// into one declaration statement per scope, kept to one variable per
// statement, or merged only when statements are adjacent. Violations carry
// suggested fixes that rewrite the source without touching comments or the
// rest of the line layout.
//
// The undefined-identifier check resolves every referenced identifier
// against the scopes of the program and a configurable set of globals.
package analyzer
