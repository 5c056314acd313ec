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

package candidate_test

import (
	"testing"

	. "fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/syntax"
	"fillmore-labs.com/braces/internal/testsource"
)

func firstOwner(t *testing.T, tree *syntax.Tree, kind syntax.Kind) syntax.Cursor {
	t.Helper()

	for c := range tree.Cursor().Preorder() {
		if c.Node().Kind == kind {
			return c
		}
	}

	t.Fatalf("No %v in tree", kind)

	return syntax.Cursor{}
}

func TestForOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		kind   syntax.Kind
		op     Operation
		single bool
	}{
		{"bare while", "while (a) F();", syntax.WhileStatement, Wrap, false},
		{"braced for", "for (;;) { F(); }", syntax.ForStatement, Unwrap, true},
		{"braced multiple", "foreach (var x in xs) { F(); G(); }", syntax.ForEachStatement, Unwrap, false},
		{"else clause", "if (a) F(); else { G(); }", syntax.ElseClause, Unwrap, true},
		{"do", "do F(); while (a);", syntax.DoStatement, Wrap, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, tt.src)
			owner := firstOwner(t, tree, tt.kind)

			c, ok := ForOwner(owner)
			if !ok {
				t.Fatal("ForOwner() failed")
			}

			if c.Op != tt.op {
				t.Errorf("Op = %v, want %v", c.Op, tt.op)
			}

			if got := c.Inner != nil; got != tt.single {
				t.Errorf("Inner = %v, want single statement %t", c.Inner, tt.single)
			}

			if c.Owner.Node() != owner.Node() {
				t.Errorf("Owner = %v, want %v", c.Owner.Node().Kind, tt.kind)
			}

			body, bare := BareBody(owner.Node())
			if bare != (tt.op == Wrap) {
				t.Errorf("BareBody() = %t, want %t", bare, tt.op == Wrap)
			}

			if bare && body != c.Body.Node() {
				t.Errorf("BareBody() = %v, want the candidate body", body.Kind)
			}
		})
	}
}

func TestForBodyRejects(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, "F();")

	for c := range tree.Cursor().Preorder() {
		if _, ok := ForBody(c); ok {
			t.Errorf("ForBody(%v) succeeded outside a body slot", c.Node().Kind)
		}
	}
}

func TestStatementCount(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, "if (a) { F(); G(); H(); }")
	block := firstOwner(t, tree, syntax.IfStatement).Node().Body()

	if got, want := StatementCount(block), 3; got != want {
		t.Errorf("StatementCount() = %d, want %d", got, want)
	}

	if _, ok := SingleStatement(block); ok {
		t.Error("SingleStatement() succeeded on three statements")
	}

	if _, ok := BareBody(firstOwner(t, tree, syntax.IfStatement).Node()); ok {
		t.Error("BareBody() succeeded on a block")
	}
}
