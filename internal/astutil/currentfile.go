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

// Package astutil provides file level information for the braces analysis.
package astutil

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"fillmore-labs.com/braces/internal/syntax"
)

// braces is the name of the linter.
const braces = "braces"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *syntax.Tree
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a *[syntax.Tree].
func NewCurrentFile(tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.File == nil {
		return CurrentFile{}
	}

	return CurrentFile{tree, IsGenerated(tree)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.tree != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n *syntax.Node) int {
	return c.tree.Line(n.End) - c.tree.Line(n.Pos) + 1
}

// NoLintComment checks if a line carries a //nolint:braces comment.
func (c CurrentFile) NoLintComment(offset int) bool {
	if c.tree == nil {
		return false
	}

	for _, text := range c.tree.LineComments(c.tree.Line(offset)) {
		if CommentHasNoLint(text) {
			return true
		}
	}

	return false
}

// FileNoLint checks if the comments heading the file contain a //nolint:braces directive.
func (c CurrentFile) FileNoLint() bool {
	for _, text := range leadingComments(c.tree) {
		if CommentHasNoLint(text) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:braces` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == braces || l == "all" {
			return true
		}
	}

	return false
}

// IsGenerated reports whether the file is generated code: its name ends with ".g.cs" or ".Designer.cs",
// or the comments heading the file contain an "<auto-generated" marker.
func IsGenerated(tree *syntax.Tree) bool {
	name := strings.ToLower(filepath.Base(tree.Name))
	if strings.HasSuffix(name, ".g.cs") || strings.HasSuffix(name, ".designer.cs") {
		return true
	}

	for _, text := range leadingComments(tree) {
		if strings.Contains(text, "<auto-generated") {
			return true
		}
	}

	return false
}

// leadingComments returns the comments before the first token of the file.
func leadingComments(tree *syntax.Tree) []string {
	if tree == nil {
		return nil
	}

	var texts []string

	offset := 0
	if bytes.HasPrefix(tree.Src, bom) {
		offset = len(bom)
	}

	for _, comment := range tree.Comments {
		offset = skipSpace(tree.Src, offset)
		if comment.Pos != offset {
			break
		}

		texts = append(texts, comment.Text)
		offset = comment.End
	}

	return texts
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func skipSpace(src []byte, offset int) int {
	for offset < len(src) {
		switch src[offset] {
		case ' ', '\t', '\r', '\n':
			offset++

		default:
			return offset
		}
	}

	return offset
}
