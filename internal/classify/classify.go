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

// Package classify recognizes the statement shapes the braces engine operates on.
package classify

import "fillmore-labs.com/braces/internal/syntax"

// Class is the coarse classification of a node.
type Class uint8

//go:generate go tool stringer -type Class -linecomment
const (
	// None is a node the engine does not handle.
	None Class = iota // none

	// Statement is a simple statement or a controlling construct.
	Statement // statement

	// Block is a braced statement list.
	Block // block

	// ElseClause is the else part of an if statement.
	ElseClause // else
)

// Classify returns the [Class] of a node.
func Classify(n *syntax.Node) Class {
	if n == nil {
		return None
	}

	switch n.Kind {
	case syntax.Block:
		return Block

	case syntax.ElseClause:
		return ElseClause

	case syntax.IfStatement, syntax.WhileStatement, syntax.ForStatement, syntax.ForEachStatement,
		syntax.DoStatement, syntax.LockStatement, syntax.UsingStatement, syntax.FixedStatement,
		syntax.OtherStatement, syntax.DeclarationStatement, syntax.LabeledStatement:
		return Statement

	case syntax.Invalid, syntax.CompilationUnit:
		return None

	default:
		return None
	}
}

// Owning reports whether n owns a single body slot.
func Owning(n *syntax.Node) bool {
	return n != nil && (n.Kind.Controlling() || n.Kind == syntax.ElseClause)
}

// Owner returns the controlling construct or else clause whose body slot holds the current node.
func Owner(c syntax.Cursor) (syntax.Cursor, bool) {
	n := c.Node()
	if n == nil || n.Edge != syntax.EdgeBody {
		return syntax.Cursor{}, false
	}

	p, ok := c.Parent()
	if !ok || !Owning(p.Node()) {
		return syntax.Cursor{}, false
	}

	return p, true
}

// Name returns a human-readable name for the construct.
func Name(n *syntax.Node) string {
	switch n.Kind {
	case syntax.IfStatement, syntax.WhileStatement, syntax.ForStatement, syntax.ForEachStatement,
		syntax.DoStatement, syntax.LockStatement, syntax.UsingStatement, syntax.FixedStatement:
		return "'" + n.Kind.String() + "' statement"

	case syntax.ElseClause:
		return "'else' clause"

	default:
		return n.Kind.String()
	}
}
