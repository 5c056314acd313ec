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

package dispatch_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/config"
	. "fillmore-labs.com/braces/internal/dispatch"
	"fillmore-labs.com/braces/internal/syntax"
	"fillmore-labs.com/braces/internal/testsource"
)

func titles(actions []Action) []string {
	result := make([]string, 0, len(actions))
	for _, a := range actions {
		result = append(result, a.Title)
	}

	return result
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	const (
		add    = "Add braces"
		remove = "Remove braces"
	)

	all := config.DefaultProviders()
	behavior := config.DefaultBehavior()

	elseIf := config.DefaultBehavior()
	elseIf.Enable(config.WrapElseIf)

	tests := []struct {
		name     string
		src      string
		behavior config.Behavior
		want     []string
	}{
		// keep-sorted start
		{"block padding", "while (a)\n{[||]\n    F();\n}", behavior, []string{remove}},
		{"dangling else", "if (true)\n{[||]\n    if (false) return \"A\"; else return \"D\";\n}\nelse\n    return \"B\";", behavior, nil},
		{"else block", "if (a) F();\n[||]else { G(); }", behavior, []string{remove}},
		{"else if", "if (a) F();\n[||]else if (b) G();", behavior, nil},
		{"else if permitted", "if (a) F();\n[||]else if (b) G();", elseIf, []string{add}},
		{"else keyword", "if (a) F();\n[||]else G();", behavior, []string{add}},
		{"empty block", "while (a) {[||] }", behavior, nil},
		{"end of statement", "for (;;)\n    F();[||]", behavior, []string{add}},
		{"header bare", "[||]if (a) F();", behavior, []string{add}},
		{"header block", "[||]while (a) { F(); }", behavior, []string{remove}},
		{"header of else if", "if (a) F();\nelse [||]if (b) G();", behavior, []string{add}},
		{"inner bare", "if (a)\n    [||]F();", behavior, []string{add}},
		{"inner block", "if (a)\n{\n    [||]F();\n}", behavior, []string{remove}},
		{"multiple statements", "while (a) {[||] F(); G(); }", behavior, nil},
		{"no owner", "[||]F();", behavior, nil},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, offset := testsource.Parse(t, tt.src)

			actions := Dispatch(t.Context(), tree, syntax.Span{Start: offset, End: offset}, all, tt.behavior, config.DefaultFormat())

			if got := titles(actions); !slices.Equal(got, tt.want) {
				t.Errorf("Dispatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDispatchSelection(t *testing.T) {
	t.Parallel()

	tree, offset := testsource.Parse(t, "if (a)\n    [||]F();")

	span := syntax.Span{Start: offset, End: offset + 1}
	if actions := Dispatch(t.Context(), tree, span, config.DefaultProviders(), config.DefaultBehavior(), config.DefaultFormat()); len(actions) > 0 {
		t.Errorf("Dispatch() = %q, want no actions for a selection", titles(actions))
	}
}

func TestDispatchProviders(t *testing.T) {
	t.Parallel()

	tree, offset := testsource.Parse(t, "if (a)\n{\n    [||]F();\n}")
	span := syntax.Span{Start: offset, End: offset}

	providers := config.NewBitMask(config.AddBraces)
	if actions := Dispatch(t.Context(), tree, span, providers, config.DefaultBehavior(), config.DefaultFormat()); len(actions) > 0 {
		t.Errorf("Dispatch() = %q, want no actions with removal disabled", titles(actions))
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	tree, offset := testsource.Parse(t, "while (true)\n{\n    [||]i++;\n}")
	span := syntax.Span{Start: offset, End: offset}

	actions := Dispatch(t.Context(), tree, span, config.DefaultProviders(), config.DefaultBehavior(), config.DefaultFormat())
	if len(actions) != 1 {
		t.Fatalf("Got %d actions, want 1", len(actions))
	}

	a := actions[0]

	if a.Provider != config.RemoveBraces {
		t.Errorf("Provider = %v, want %v", a.Provider, config.RemoveBraces)
	}

	if got := tree.Src[a.Pos]; got != '{' {
		t.Errorf("Target starts with %q, want '{'", got)
	}

	if a.Candidate().Op != candidate.Unwrap {
		t.Errorf("Op = %v, want %v", a.Candidate().Op, candidate.Unwrap)
	}

	result := a.Compute()

	if got, want := result.Message, "Remove braces from 'while' statement"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}

	if len(result.Edits) != 2 {
		t.Errorf("Got %d edits, want 2", len(result.Edits))
	}
}

func TestStrategiesExclusive(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, "if (a)\n{\n    F();\n}\nelse\n    while (b) G();")
	behavior := config.DefaultBehavior()

	for offset := range len(tree.Src) + 1 {
		c, loc := classify.Locate(tree.Cursor(), offset)

		for _, strategies := range [][]Strategy{AddStrategies, RemoveStrategies} {
			matches := 0

			for _, strategy := range strategies {
				if _, ok := strategy(c, loc, behavior); ok {
					matches++
				}
			}

			if matches > 1 {
				t.Errorf("Offset %d: %d strategies match", offset, matches)
			}
		}
	}
}
