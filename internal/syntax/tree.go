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

package syntax

import (
	"bytes"
	"go/token"
	"strings"
)

// Span is a half-open range of byte offsets.
type Span struct {
	Start, End int
}

// Empty reports whether the span has zero width.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Comment is a comment in the source.
type Comment struct {
	Pos, End int
	Text     string
}

// Tree is a parsed source file.
type Tree struct {
	Name     string
	Src      []byte
	Root     *Node
	File     *token.File
	Comments []Comment // Sorted by position

	// SyntaxErrors is set when the parser recovered from errors.
	SyntaxErrors bool
}

// NewTree creates a [Tree], registering the source with the file set.
// A nil file set gets a fresh one.
func NewTree(fset *token.FileSet, name string, src []byte, root *Node) *Tree {
	if fset == nil {
		fset = token.NewFileSet()
	}

	file := fset.AddFile(name, -1, len(src))
	file.SetLinesForContent(src)

	return &Tree{Name: name, Src: src, Root: root, File: file}
}

// Cursor returns a cursor at the root of the tree.
func (t *Tree) Cursor() Cursor {
	return NewCursor(t.Root)
}

// Pos converts an offset into a [token.Pos].
func (t *Tree) Pos(offset int) token.Pos {
	return t.File.Pos(offset)
}

// Offset converts a [token.Pos] into an offset.
func (t *Tree) Offset(pos token.Pos) int {
	return t.File.Offset(pos)
}

// Position returns the line and column of an offset.
func (t *Tree) Position(offset int) token.Position {
	return t.File.PositionFor(t.File.Pos(offset), false)
}

// Line returns the 1-based line of an offset.
func (t *Tree) Line(offset int) int {
	return t.File.Line(t.File.Pos(offset))
}

// OffsetOf converts a 1-based line and byte column into an offset.
func (t *Tree) OffsetOf(line, column int) (int, bool) {
	if line < 1 || line > t.File.LineCount() || column < 1 {
		return 0, false
	}

	start := t.File.Offset(t.File.LineStart(line))

	end := len(t.Src)
	if i := bytes.IndexByte(t.Src[start:], '\n'); i >= 0 {
		end = start + i
	}

	if end > start && t.Src[end-1] == '\r' {
		end--
	}

	// The column after the last byte is the line end
	offset := start + column - 1
	if offset > end {
		return 0, false
	}

	return offset, true
}

// LineComments yields the text of comments starting on the given line.
func (t *Tree) LineComments(line int) []string {
	var texts []string

	for _, c := range t.Comments {
		switch l := t.Line(c.Pos); {
		case l < line:
			continue

		case l == line:
			texts = append(texts, c.Text)

		default:
			return texts
		}
	}

	return texts
}

// Equal reports whether two trees have the same structure, ignoring positions and whitespace.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || a.Edge != b.Edge || len(a.Children) != len(b.Children) {
		return false
	}

	if len(a.Children) == 0 && normalize(a.Text) != normalize(b.Text) {
		return false
	}

	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}

	return true
}

func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
