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

// Status indicates whether a candidate can be rewritten and why not.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Applicable indicates the rewrite is safe.
	Applicable Status = iota // ok

	// NoOwner indicates the statement is not in the body slot of a controlling construct or else clause.
	NoOwner // own

	// AlreadyBlock indicates adding braces to a body that is already a block.
	AlreadyBlock // blk

	// NotBlock indicates removing braces from a body that is not a block.
	NotBlock // bar

	// EmptyBlock indicates removing braces from a block without statements.
	EmptyBlock // emp

	// MultipleStatements indicates removing braces from a block with more than one statement.
	MultipleStatements // mul

	// DanglingElse indicates removing braces would let an else bind to a different if statement.
	DanglingElse // dng

	// ElseIf indicates adding braces around the if statement of an "else if".
	// This is only permitted when WrapElseIf is enabled.
	ElseIf // eif

	// EmbeddedDeclaration indicates removing braces would leave a declaration or labeled statement
	// as embedded statement, which does not compile.
	EmbeddedDeclaration // dcl
)

// Applicable reports whether the candidate can be rewritten.
func (i Status) Applicable() bool { return i == Applicable }
