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

package classify

import "fillmore-labs.com/braces/internal/syntax"

// Location is where a cursor sits relative to the innermost node containing it.
type Location uint8

//go:generate go tool stringer -type Location -linecomment
const (
	// Nowhere is a position the engine does not handle.
	Nowhere Location = iota // nowhere

	// Inner is a position inside a simple statement.
	Inner // inner

	// Braces is a position on a block's braces or padding, outside its statements.
	Braces // braces

	// Header is a position inside a controlling construct, outside its body and else clause.
	Header // header

	// ElseKeyword is a position on an else clause, outside its body.
	ElseKeyword // else keyword
)

// Locate returns the innermost node containing offset and the [Location] of offset within it.
func Locate(root syntax.Cursor, offset int) (syntax.Cursor, Location) {
	c := root.Innermost(offset)

	n := c.Node()
	switch Classify(n) {
	case Block:
		return c, Braces

	case ElseClause:
		return c, ElseKeyword

	case Statement:
		if n.Kind.Controlling() {
			return c, Header
		}

		return c, Inner

	default:
		return c, Nowhere
	}
}
