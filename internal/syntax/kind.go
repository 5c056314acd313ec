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

// Kind is the closed set of statement-level node kinds the engine distinguishes.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Invalid is the zero value.
	Invalid Kind = iota // invalid

	// CompilationUnit is the root of a tree.
	CompilationUnit // compilation unit

	IfStatement      // if
	WhileStatement   // while
	ForStatement     // for
	ForEachStatement // foreach
	DoStatement      // do
	LockStatement    // lock
	UsingStatement   // using
	FixedStatement   // fixed

	// ElseClause owns the alternative of an if statement.
	ElseClause // else

	// Block is a braced statement list.
	Block // block

	// OtherStatement is any statement without a recognized shape.
	OtherStatement // statement

	// DeclarationStatement declares a local variable, constant or function.
	DeclarationStatement // declaration

	// LabeledStatement is a statement prefixed with a label.
	LabeledStatement // labeled
)

// Edge describes the role of a node in its parent.
type Edge uint8

//go:generate go tool stringer -type Edge -linecomment
const (
	// EdgeNested is a statement nested somewhere inside the parent, e.g. in a lambda body.
	EdgeNested Edge = iota // nested

	// EdgeBody is the single body slot of a controlling construct or else clause.
	EdgeBody // body

	// EdgeElse is the else clause of an if statement.
	EdgeElse // else

	// EdgeStatement is a direct element of a block's statement list.
	EdgeStatement // statement
)

// Controlling reports whether k is a statement owning exactly one body slot.
func (k Kind) Controlling() bool {
	switch k {
	case IfStatement, WhileStatement, ForStatement, ForEachStatement,
		DoStatement, LockStatement, UsingStatement, FixedStatement:
		return true

	default:
		return false
	}
}

// Statement reports whether k is an executable statement, including blocks.
func (k Kind) Statement() bool {
	switch k {
	case Invalid, CompilationUnit, ElseClause:
		return false

	default:
		return true
	}
}
