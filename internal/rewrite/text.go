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
	"bytes"
	"iter"
)

// text answers layout questions about a source.
type text struct {
	src []byte
}

func blank(b byte) bool { return b == ' ' || b == '\t' }

// newline returns the line terminator used by the source.
func (t text) newline() string {
	if bytes.Contains(t.src, []byte("\r\n")) {
		return "\r\n"
	}

	return "\n"
}

// lineStart returns the offset of the first byte of the line containing offset.
func (t text) lineStart(offset int) int {
	return bytes.LastIndexByte(t.src[:offset], '\n') + 1
}

// lineEnd returns the offset of the line terminator following offset, or the source length.
func (t text) lineEnd(offset int) int {
	if i := bytes.IndexByte(t.src[offset:], '\n'); i >= 0 {
		return offset + i
	}

	return len(t.src)
}

// lineContentEnd returns the end of the line content following offset, excluding a carriage return.
func (t text) lineContentEnd(offset int) int {
	end := t.lineEnd(offset)
	if end > offset && t.src[end-1] == '\r' {
		end--
	}

	return end
}

// nextLineStart returns the offset of the line after the one containing offset, or the source length.
func (t text) nextLineStart(offset int) int {
	end := t.lineEnd(offset)
	if end < len(t.src) {
		end++
	}

	return end
}

// indent returns the leading blanks of the line containing offset.
func (t text) indent(offset int) string {
	start := t.lineStart(offset)

	end := start
	for end < len(t.src) && blank(t.src[end]) {
		end++
	}

	return string(t.src[start:end])
}

// blankBefore reports whether only blanks precede offset on its line.
func (t text) blankBefore(offset int) bool {
	return t.trimLeft(offset) == t.lineStart(offset)
}

// blankAfter reports whether only blanks follow offset on its line.
func (t text) blankAfter(offset int) bool {
	return t.skipBlanks(offset) == t.lineContentEnd(offset)
}

// trimLeft returns the offset after the last non-blank before offset on the same line.
func (t text) trimLeft(offset int) int {
	start := t.lineStart(offset)
	for offset > start && blank(t.src[offset-1]) {
		offset--
	}

	return offset
}

// skipBlanks returns the offset of the first non-blank at or after offset.
func (t text) skipBlanks(offset int) int {
	for offset < len(t.src) && blank(t.src[offset]) {
		offset++
	}

	return offset
}

// afterCloseBrace reports whether the line containing offset starts with a closing brace.
func (t text) afterCloseBrace(offset int) bool {
	start := t.skipBlanks(t.lineStart(offset))

	return start < offset && t.src[start] == '}'
}

// continuationLines yields the start offsets of non-empty lines after the first in [pos, end).
func (t text) continuationLines(pos, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for offset := t.nextLineStart(pos); offset < end; offset = t.nextLineStart(offset) {
			if t.blankAfter(offset) {
				continue
			}

			if !yield(offset) {
				return
			}
		}
	}
}

// openBrace returns the range to delete for an opening brace.
func (t text) openBrace(offset int) (pos, end int) {
	switch after := offset + 1; {
	case t.blankBefore(offset) && t.blankAfter(after):
		// Alone on its line
		return t.lineStart(offset), t.nextLineStart(offset)

	case t.blankAfter(after):
		// At the end of the header line, keep the line terminator
		return t.trimLeft(offset), t.lineContentEnd(offset)

	default:
		return offset, t.skipBlanks(after)
	}
}

// closeBrace returns the range to delete for a closing brace.
func (t text) closeBrace(offset int) (pos, end int) {
	switch after := offset + 1; {
	case t.blankBefore(offset) && t.blankAfter(after):
		// Alone on its line
		if next := t.nextLineStart(offset); next > t.lineEnd(offset) {
			return t.lineStart(offset), next
		}

		// Last line without terminator, remove the preceding one
		start := t.lineStart(offset)
		if start > 0 {
			start--
			if start > 0 && t.src[start-1] == '\r' {
				start--
			}
		}

		return start, t.lineContentEnd(offset)

	case !t.blankBefore(offset):
		return t.trimLeft(offset), after

	default:
		// Followed by content like "else"
		return offset, t.skipBlanks(after)
	}
}
