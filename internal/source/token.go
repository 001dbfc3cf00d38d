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

package source

import "github.com/t14raptor/go-fast/ast"

// Token is a lexical item located by [File.TokenAfter]. The parser's scanner
// discards comments, so the spans between known node boundaries are re-scanned
// here when a fix needs to preserve them.
type Token struct {
	Start, End ast.Idx
	Comment    bool
}

// Text returns the raw text of the token.
func (t Token) Text(f *File) string { return f.Text(t.Start, t.End) }

// Is reports whether the token is the single character c.
func (t Token) Is(f *File, c byte) bool {
	return !t.Comment && t.End == t.Start+1 && f.src[t.Start] == c
}

// TokenAfter scans forward from the byte offset and returns the next token,
// skipping whitespace. Comments are skipped as well unless includeComments is
// set, in which case a comment is returned as a single token spanning its
// delimiters. The second result is false at end of input.
func (f *File) TokenAfter(from ast.Idx, includeComments bool) (Token, bool) {
	i := int(f.clamp(from))

	for i < len(f.src) {
		switch c := f.src[i]; {
		case isSpace(c):
			i++

		case c == '/' && i+1 < len(f.src) && f.src[i+1] == '/':
			end := i + 2
			for end < len(f.src) && f.src[end] != '\n' {
				end++
			}

			if includeComments {
				return Token{Start: ast.Idx(i), End: ast.Idx(end), Comment: true}, true
			}
			i = end

		case c == '/' && i+1 < len(f.src) && f.src[i+1] == '*':
			end := i + 2
			for end+1 < len(f.src) && !(f.src[end] == '*' && f.src[end+1] == '/') {
				end++
			}
			if end+1 < len(f.src) {
				end += 2
			} else {
				end = len(f.src)
			}

			if includeComments {
				return Token{Start: ast.Idx(i), End: ast.Idx(end), Comment: true}, true
			}
			i = end

		default:
			return Token{Start: ast.Idx(i), End: ast.Idx(i + wordLen(f.src[i:]))}, true
		}
	}

	return Token{}, false
}

// SkipComments advances over a contiguous run of comments (and the whitespace
// between them) starting at tok, returning the first non-comment token.
func (f *File) SkipComments(tok Token) (Token, bool) {
	for tok.Comment {
		next, ok := f.TokenAfter(tok.End, true)
		if !ok {
			return Token{}, false
		}
		tok = next
	}

	return tok, true
}

// wordLen returns the length of the token starting the string: a run of
// identifier characters, or a single byte for punctuation.
func wordLen(s string) int {
	if !isWord(s[0]) {
		return 1
	}

	n := 1
	for n < len(s) && isWord(s[n]) {
		n++
	}

	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isWord(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '$':
		return true
	default:
		return c >= 0x80 // multi-byte identifier characters
	}
}
