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

package classify_test

import (
	"testing"

	. "fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/syntax"
	"fillmore-labs.com/braces/internal/testsource"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		loc  Location
		kind syntax.Kind
	}{
		{"Inner", "if (a)\n    b[||]();", Inner, syntax.OtherStatement},
		{"Header", "wh[||]ile (a)\n    b();", Header, syntax.WhileStatement},
		{"Condition", "if (a[||])\n    b();", Header, syntax.IfStatement},
		{"OpenBrace", "while (a)\n[||]{\n    b();\n}", Braces, syntax.Block},
		{"CloseBrace", "while (a)\n{\n    b();\n[||]}", Braces, syntax.Block},
		{"Else", "if (a)\n    b();\nel[||]se\n    c();", ElseKeyword, syntax.ElseClause},
		{"Declaration", "{\n    var [||]x = 1;\n}", Inner, syntax.DeclarationStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, offset := testsource.Parse(t, tt.src)

			c, loc := Locate(tree.Cursor(), offset)
			if loc != tt.loc {
				t.Errorf("Got location %s, want %s", loc, tt.loc)
			}

			if got := c.Node().Kind; got != tt.kind {
				t.Errorf("Got node %s, want %s", got, tt.kind)
			}
		})
	}
}

func TestOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		owner syntax.Kind
		ok    bool
	}{
		{"If", "if (a)\n    b[||]();", syntax.IfStatement, true},
		{"Else", "if (a)\n    b();\nelse\n    c[||]();", syntax.ElseClause, true},
		{"Do", "do\n    b[||]();\nwhile (a);", syntax.DoStatement, true},
		{"Fixed", "fixed (int* p = &x)\n    b[||]();", syntax.FixedStatement, true},
		{"BlockElement", "{\n    b[||]();\n}", syntax.Invalid, false},
		{"TopLevel", "b[||]();", syntax.Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, offset := testsource.Parse(t, tt.src)

			c, _ := Locate(tree.Cursor(), offset)

			owner, ok := Owner(c)
			if ok != tt.ok {
				t.Fatalf("Got owner %v, want %v", ok, tt.ok)
			}

			if ok && owner.Node().Kind != tt.owner {
				t.Errorf("Got owner %s, want %s", owner.Node().Kind, tt.owner)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind syntax.Kind
		want Class
	}{
		{syntax.CompilationUnit, None},
		{syntax.IfStatement, Statement},
		{syntax.DoStatement, Statement},
		{syntax.Block, Block},
		{syntax.ElseClause, ElseClause},
		{syntax.LabeledStatement, Statement},
	}

	for _, tt := range tests {
		if got := Classify(&syntax.Node{Kind: tt.kind}); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}

	if got := Classify(nil); got != None {
		t.Errorf("Classify(nil) = %s, want %s", got, None)
	}
}
