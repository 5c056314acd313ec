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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/braces/internal/syntax"
)

// positioned builds "while (x) { a(); b(); }" with explicit offsets.
//
//	0         1         2
//	0123456789012345678901234
//	while (x) { a(); b(); }
func positioned() *Node {
	a := &Node{Kind: OtherStatement, Edge: EdgeStatement, Pos: 12, End: 16, Keyword: 12, Close: NoPos, Text: "a();"}
	b := &Node{Kind: OtherStatement, Edge: EdgeStatement, Pos: 17, End: 21, Keyword: 17, Close: NoPos, Text: "b();"}
	block := &Node{Kind: Block, Edge: EdgeBody, Pos: 10, End: 23, Keyword: 10, Close: 22, Children: []*Node{a, b}}
	loop := &Node{Kind: WhileStatement, Edge: EdgeNested, Pos: 0, End: 23, Keyword: 0, Close: NoPos, Children: []*Node{block}}

	return &Node{Kind: CompilationUnit, Pos: 0, End: 23, Keyword: NoPos, Close: NoPos, Children: []*Node{loop}}
}

func TestInnermost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offset int
		want   Kind
	}{
		{"Keyword", 2, WhileStatement},
		{"Brace", 10, Block},
		{"First", 13, OtherStatement},
		{"Between", 16, OtherStatement},
		{"Closing", 22, Block},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCursor(positioned()).Innermost(tt.offset)
			if got := c.Node().Kind; got != tt.want {
				t.Errorf("Innermost(%d) = %s, want %s", tt.offset, got, tt.want)
			}
		})
	}
}

func TestInnermostPrefersLaterChild(t *testing.T) {
	t.Parallel()

	c := NewCursor(positioned()).Innermost(16)
	if got, want := c.Node().Text, "a();"; got != want {
		t.Errorf("Innermost(16) = %q, want %q", got, want)
	}

	c = NewCursor(positioned()).Innermost(17)
	if got, want := c.Node().Text, "b();"; got != want {
		t.Errorf("Innermost(17) = %q, want %q", got, want)
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	root := positioned()

	c := NewCursor(root).Innermost(13)
	replacement := NewStatement(OtherStatement, EdgeStatement, "c();")

	newRoot := c.Replace(replacement)

	if newRoot == root {
		t.Fatal("Replace returned the original root")
	}

	if got := root.Children[0].Body().Children[0].Text; got != "a();" {
		t.Errorf("Original tree modified: got %q", got)
	}

	body := newRoot.Children[0].Body()
	if got := body.Children[0].Text; got != "c();" {
		t.Errorf("Replaced statement = %q, want %q", got, "c();")
	}

	if body.Children[1] != root.Children[0].Body().Children[1] {
		t.Error("Unchanged sibling not shared")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	stmt := func(text string) *Node { return NewStatement(OtherStatement, EdgeBody, text) }

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"Positions", positioned(), positioned(), true},
		{"Whitespace", stmt("i++ ;"), stmt("i++\n\t;"), true},
		{"Text", stmt("i++;"), stmt("j++;"), false},
		{"Kind", stmt("x;"), NewStatement(DeclarationStatement, EdgeBody, "x;"), false},
		{"Edge", stmt("x;"), stmt("x;").WithEdge(EdgeStatement), false},
		{"Block", NewBlock(EdgeBody, stmt("x;")), NewBlock(EdgeBody, stmt("x;"), stmt("y;")), false},
		{"Nil", nil, stmt("x;"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControlling(t *testing.T) {
	t.Parallel()

	for k := Invalid; k <= LabeledStatement; k++ {
		want := k >= IfStatement && k <= FixedStatement
		if got := k.Controlling(); got != want {
			t.Errorf("%s.Controlling() = %v, want %v", k, got, want)
		}
	}
}

func TestOffsetOf(t *testing.T) {
	t.Parallel()

	tree := NewTree(nil, "test.cs", []byte("while (x)\r\n{ a(); }\n"), nil)

	tests := []struct {
		name         string
		line, column int
		want         int
		ok           bool
	}{
		{"first", 1, 1, 0, true},
		{"line end", 1, 10, 9, true},
		{"past line end", 1, 11, 0, false},
		{"second line", 2, 3, 13, true},
		{"second line end", 2, 9, 19, true},
		{"past second line", 2, 10, 0, false},
		{"line zero", 0, 1, 0, false},
		{"column zero", 1, 0, 0, false},
		{"past last line", 3, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tree.OffsetOf(tt.line, tt.column)
			if ok != tt.ok || got != tt.want {
				t.Errorf("OffsetOf(%d, %d) = %d, %t, want %d, %t", tt.line, tt.column, got, ok, tt.want, tt.ok)
			}
		})
	}
}
