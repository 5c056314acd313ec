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

// Package rewrite produces the structural and textual result of adding or removing braces.
//
// Both operations are pure: the input tree is left unchanged, the new structure is built
// by path copying from the candidate's cursor and the text edits refer to positions
// in the input tree's file.
package rewrite

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/syntax"
)

// Result is a computed rewrite.
type Result struct {
	Root    *syntax.Node        // New root of the structural tree
	Edits   []analysis.TextEdit // Text edits in source order
	Message string              // Description of the rewrite
}

// Wrap replaces the bare body statement of the candidate's owner with a block containing it.
func Wrap(tree *syntax.Tree, c candidate.Candidate, format config.Format) Result {
	owner, stmt := c.Owner.Node(), c.Body.Node()

	root := c.Body.Replace(syntax.NewBlock(syntax.EdgeBody, stmt))

	t := text{src: tree.Src}
	indent := t.indent(owner.Keyword)
	nl := t.newline()

	var (
		open  bytes.Buffer
		edits []analysis.TextEdit
	)

	if t.blankBefore(stmt.Pos) {
		// Statement on its own line
		open.WriteString(indent) // ignore error
		open.WriteByte('{')      // ignore error
		open.WriteString(nl)     // ignore error

		start := t.lineStart(stmt.Pos)
		edits = append(edits, analysis.TextEdit{Pos: tree.Pos(start), End: tree.Pos(start), NewText: open.Bytes()})
	} else {
		// Statement on the header line
		if t.afterCloseBrace(owner.Keyword) {
			// "} else" keeps the brace on its line
			open.WriteString(" {") // ignore error
		} else {
			open.WriteString(nl)     // ignore error
			open.WriteString(indent) // ignore error
			open.WriteByte('{')      // ignore error
		}

		open.WriteString(nl)            // ignore error
		open.WriteString(indent)        // ignore error
		open.WriteString(format.Unit()) // ignore error

		gap := t.trimLeft(stmt.Pos)
		edits = append(edits, analysis.TextEdit{Pos: tree.Pos(gap), End: tree.Pos(stmt.Pos), NewText: open.Bytes()})

		// Continuation lines move one level deeper with the statement
		unit := []byte(format.Unit())
		for start := range t.continuationLines(stmt.Pos, stmt.End) {
			edits = append(edits, analysis.TextEdit{Pos: tree.Pos(start), End: tree.Pos(start), NewText: unit})
		}
	}

	end := stmt.End
	if comment, ok := trailingComment(tree, stmt.End); ok {
		end = comment.End
	}

	edits = append(edits, analysis.TextEdit{Pos: tree.Pos(end), End: tree.Pos(end), NewText: []byte(nl + indent + "}")})

	return Result{
		Root:    root,
		Edits:   edits,
		Message: fmt.Sprintf("Add braces to %s", classify.Name(owner)),
	}
}

// Unwrap replaces the block body of the candidate's owner with its single statement.
func Unwrap(tree *syntax.Tree, c candidate.Candidate, _ config.Format) Result {
	owner, block := c.Owner.Node(), c.Body.Node()

	inner := c.Inner
	if inner == nil {
		inner, _ = candidate.SingleStatement(block)
	}

	root := c.Body.Replace(inner.WithEdge(syntax.EdgeBody))

	t := text{src: tree.Src}

	var edits []analysis.TextEdit

	if pos, end := t.openBrace(block.Keyword); pos < end {
		edits = append(edits, analysis.TextEdit{Pos: tree.Pos(pos), End: tree.Pos(end)})
	}

	if block.Close != syntax.NoPos {
		if pos, end := t.closeBrace(block.Close); pos < end {
			edits = append(edits, analysis.TextEdit{Pos: tree.Pos(pos), End: tree.Pos(end)})
		}
	}

	return Result{
		Root:    root,
		Edits:   edits,
		Message: fmt.Sprintf("Remove braces from %s", classify.Name(owner)),
	}
}

// trailingComment returns a comment following offset on the same line, separated only by blanks.
func trailingComment(tree *syntax.Tree, offset int) (syntax.Comment, bool) {
	t := text{src: tree.Src}
	next := t.skipBlanks(offset)

	for _, comment := range tree.Comments {
		if comment.Pos < next {
			continue
		}

		if comment.Pos == next && t.lineContentEnd(offset) == comment.End {
			return comment, true
		}

		break
	}

	return syntax.Comment{}, false
}
