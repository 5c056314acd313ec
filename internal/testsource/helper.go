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

// Package testsource provides utilities for parsing C# source fragments in tests.
//
// It is designed to simplify testing of the braces engine by handling the boilerplate
// of wrapping statement-level fragments into a compilation unit and locating cursor markers.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/braces/internal/csharp"
	"fillmore-labs.com/braces/internal/syntax"
)

// Marker is the cursor marker in test sources.
const Marker = "[||]"

const (
	header = "class C\n{\nvoid M()\n{\n"
	suffix = "\n}\n}\n"
)

// Parse parses a C# statement fragment into a [syntax.Tree].
// The provided source `src` is automatically wrapped in a method body `void M() { ... }`
// within a class `C`. This allows testing statement-level code fragments without
// manually constructing the surrounding scaffolding.
//
// An optional [Marker] in the source is removed, its offset in the wrapped source is returned
// or -1 if there is none.
func Parse(tb testing.TB, src string) (tree *syntax.Tree, offset int) {
	tb.Helper()

	offset = -1
	if i := strings.Index(src, Marker); i >= 0 {
		src = src[:i] + src[i+len(Marker):]
		offset = len(header) + i
	}

	tree, err := csharp.Parse(tb.Context(), nil, "test.cs", []byte(Wrap(src)))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if tree.SyntaxErrors {
		tb.Fatalf("Syntax errors in source %q", src)
	}

	return tree, offset
}

// Wrap returns the fragment wrapped into a compilation unit.
func Wrap(src string) string {
	var b strings.Builder
	b.Grow(len(header) + len(src) + len(suffix))

	b.WriteString(header) // ignore error
	b.WriteString(src)    // ignore error
	b.WriteString(suffix) // ignore error

	return b.String()
}

// Fragment strips the scaffolding added by [Wrap].
func Fragment(tb testing.TB, src string) string {
	tb.Helper()

	fragment, ok := strings.CutPrefix(src, header)
	if !ok {
		tb.Fatalf("Missing header in %q", src)
	}

	fragment, ok = strings.CutSuffix(fragment, suffix)
	if !ok {
		tb.Fatalf("Missing suffix in %q", src)
	}

	return fragment
}
