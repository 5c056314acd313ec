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

package rewrite

import (
	"strings"
	"testing"
)

func TestBraceRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		open  bool
		brace int
		want  string
	}{
		{"open alone", "while (x)\n{\n    i++;\n}\n", true, 10, "while (x)\n    i++;\n}\n"},
		{"open header", "while (x) {\n    i++;\n}\n", true, 10, "while (x)\n    i++;\n}\n"},
		{"open inline", "while (x) { i++; }", true, 10, "while (x) i++; }"},
		{"close alone", "{\n    i++;\n}\n", false, 11, "{\n    i++;\n"},
		{"close at eof", "{\n    i++;\n}", false, 11, "{\n    i++;"},
		{"close at eof crlf", "{\r\n    i++;\r\n}", false, 13, "{\r\n    i++;"},
		{"close before else", "}\n} else {", false, 2, "}\nelse {"},
		{"close inline", "{ i++; }", false, 7, "{ i++;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if c := tt.src[tt.brace]; c != '{' && c != '}' {
				t.Fatalf("No brace at %d: %q", tt.brace, c)
			}

			txt := text{src: []byte(tt.src)}

			var pos, end int
			if tt.open {
				pos, end = txt.openBrace(tt.brace)
			} else {
				pos, end = txt.closeBrace(tt.brace)
			}

			if got := tt.src[:pos] + tt.src[end:]; got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewline(t *testing.T) {
	t.Parallel()

	if got := (text{src: []byte("a\r\nb")}).newline(); got != "\r\n" {
		t.Errorf("newline() = %q, want CRLF", got)
	}

	if got := (text{src: []byte("a\nb")}).newline(); got != "\n" {
		t.Errorf("newline() = %q, want LF", got)
	}
}

func TestContinuationLines(t *testing.T) {
	t.Parallel()

	src := "if (b)\n    G();\n\nelse\n    H();"
	txt := text{src: []byte(src)}

	var lines []string
	for start := range txt.continuationLines(0, len(src)) {
		lines = append(lines, strings.TrimSpace(src[start:txt.lineEnd(start)]))
	}

	if got, want := strings.Join(lines, "|"), "G();|else|H();"; got != want {
		t.Errorf("continuationLines() = %q, want %q", got, want)
	}
}

func TestAfterCloseBrace(t *testing.T) {
	t.Parallel()

	txt := text{src: []byte("if (a)\n{\n    F();\n} else G();\nelse H();\n")}

	tests := []struct {
		name   string
		offset int
		want   bool
	}{
		{"after brace", strings.Index(string(txt.src), "else G"), true},
		{"line start", strings.Index(string(txt.src), "else H"), false},
		{"header", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := txt.afterCloseBrace(tt.offset); got != tt.want {
				t.Errorf("afterCloseBrace(%d) = %t, want %t", tt.offset, got, tt.want)
			}
		})
	}
}
