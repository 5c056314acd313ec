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

package report

import (
	"bytes"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/syntax"
)

// ErrOverlap is returned when text edits overlap.
var ErrOverlap = errors.New("overlapping edits")

// ApplyEdits returns the tree's source with the edits applied.
func ApplyEdits(tree *syntax.Tree, edits []analysis.TextEdit) ([]byte, error) {
	sorted := slices.SortedStableFunc(slices.Values(edits), func(a, b analysis.TextEdit) int {
		return int(a.Pos - b.Pos)
	})

	var (
		buf  bytes.Buffer
		last int
	)

	buf.Grow(len(tree.Src))

	for _, edit := range sorted {
		pos, end := tree.Offset(edit.Pos), tree.Offset(edit.End)
		if end < pos {
			end = pos // insertion with unset End
		}

		if pos < last {
			return nil, errors.Wrapf(ErrOverlap, "%s: edit at %s", tree.Name, tree.Position(pos))
		}

		buf.Write(tree.Src[last:pos]) // ignore error
		buf.Write(edit.NewText)       // ignore error

		last = end
	}

	buf.Write(tree.Src[last:]) // ignore error

	return buf.Bytes(), nil
}

// ApplyFixes applies the first suggested fix of every diagnostic that does not overlap an earlier one.
// It returns the new source and the number of applied fixes.
func ApplyFixes(tree *syntax.Tree, diagnostics []analysis.Diagnostic) ([]byte, int, error) {
	var (
		edits   []analysis.TextEdit
		taken   []span
		applied int
	)

	for _, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		fix := d.SuggestedFixes[0]

		s, ok := extent(tree, fix.TextEdits)
		if !ok || slices.ContainsFunc(taken, s.overlaps) {
			continue
		}

		taken = append(taken, s)
		edits = append(edits, fix.TextEdits...)
		applied++
	}

	if applied == 0 {
		return tree.Src, 0, nil
	}

	src, err := ApplyEdits(tree, edits)
	if err != nil {
		return nil, 0, err
	}

	return src, applied, nil
}

type span struct{ pos, end int }

// overlaps reports whether two spans overlap or touch.
func (s span) overlaps(o span) bool {
	return s.pos <= o.end && o.pos <= s.end
}

// extent returns the span covered by all edits.
func extent(tree *syntax.Tree, edits []analysis.TextEdit) (span, bool) {
	if len(edits) == 0 {
		return span{}, false
	}

	s := span{pos: len(tree.Src), end: 0}
	for _, edit := range edits {
		pos, end := tree.Offset(edit.Pos), tree.Offset(edit.End)
		s.pos = min(s.pos, pos)
		s.end = max(s.end, pos, end)
	}

	return s, true
}
