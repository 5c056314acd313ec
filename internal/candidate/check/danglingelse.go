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

package check

import "fillmore-labs.com/braces/internal/syntax"

// DanglingElseRisk reports whether replacing block by its single statement inner
// would change which if statement an else clause binds to.
//
// An else binds to the nearest preceding if statement without else. Removing the braces
// exposes inner, so the risk exists when inner ends with such an if statement and
// the end of the block is directly followed by an else:
//
//	if (a)
//	{
//	    if (b) F();
//	}
//	else
//	    G();
//
// In conservative mode, any if statement at the end of inner counts, even one with its
// own else: the result is correct, but reads as a dangling else chain.
func DanglingElseRisk(block syntax.Cursor, inner *syntax.Node, conservative bool) bool {
	if !endsWithIf(inner, conservative) {
		return false
	}

	return followedByElse(block)
}

// endsWithIf reports whether the statement's text ends with an if statement
// that could adopt a following else.
func endsWithIf(stmt *syntax.Node, conservative bool) bool {
	for stmt != nil {
		switch stmt.Kind {
		case syntax.IfStatement:
			clause := stmt.Else()
			if clause == nil || conservative {
				return true
			}

			stmt = clause.Body()

		case syntax.WhileStatement, syntax.ForStatement, syntax.ForEachStatement,
			syntax.LockStatement, syntax.UsingStatement, syntax.FixedStatement:
			stmt = stmt.Body()

		case syntax.LabeledStatement:
			stmt = lastChild(stmt)

		default: // Blocks, do statements and simple statements are closed
			return false
		}
	}

	return false
}

// followedByElse reports whether the end of the node is also the end of the consequence of an if
// statement with else, reached through bare body slots only.
func followedByElse(c syntax.Cursor) bool {
	for {
		n := c.Node()

		parent, ok := c.Parent()
		if !ok {
			return false
		}

		switch n.Edge {
		case syntax.EdgeBody:
			switch parent.Node().Kind {
			case syntax.IfStatement:
				if parent.Node().Else() != nil {
					return true // n is the consequence
				}

			case syntax.WhileStatement, syntax.ForStatement, syntax.ForEachStatement,
				syntax.LockStatement, syntax.UsingStatement, syntax.FixedStatement,
				syntax.ElseClause:

			default: // do statements are closed by "while"
				return false
			}

		case syntax.EdgeElse:
			// The end of the else clause is the end of its if statement

		default:
			return false
		}

		c = parent
	}
}

func lastChild(n *syntax.Node) *syntax.Node {
	if len(n.Children) == 0 {
		return nil
	}

	return n.Children[len(n.Children)-1]
}
