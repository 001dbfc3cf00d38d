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

package noundef

// builtinGlobals holds the standard ECMAScript globals plus the console,
// which every relevant host provides. Host-specific environments (window,
// process, ...) are added per run via configuration.
var builtinGlobals = makeSet(
	// Values.
	"globalThis", "undefined", "NaN", "Infinity",

	// Functions.
	"eval", "isFinite", "isNaN", "parseFloat", "parseInt",
	"decodeURI", "decodeURIComponent", "encodeURI", "encodeURIComponent",

	// Fundamental objects.
	"Object", "Function", "Boolean", "Symbol",
	"Error", "AggregateError", "EvalError", "RangeError", "ReferenceError",
	"SyntaxError", "TypeError", "URIError",

	// Numbers, dates, text.
	"Number", "BigInt", "Math", "Date", "String", "RegExp",

	// Collections.
	"Array", "Map", "Set", "WeakMap", "WeakSet", "WeakRef",
	"Int8Array", "Uint8Array", "Uint8ClampedArray",
	"Int16Array", "Uint16Array", "Int32Array", "Uint32Array",
	"BigInt64Array", "BigUint64Array", "Float32Array", "Float64Array",

	// Structured data.
	"ArrayBuffer", "SharedArrayBuffer", "DataView", "Atomics", "JSON",

	// Control abstractions.
	"Promise", "Proxy", "Reflect", "FinalizationRegistry",
	"Intl",

	// Host.
	"console",
)

func makeSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}
