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

// Package check holds the safety checks for braces rewrites.
package check

import (
	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/syntax"
)

// Check evaluates a candidate against the safety rules of its operation.
func Check(c candidate.Candidate, behavior config.Behavior) Status {
	if !c.Valid() {
		return NoOwner
	}

	switch c.Op {
	case candidate.Wrap:
		return CheckWrap(c, behavior)

	case candidate.Unwrap:
		return CheckUnwrap(c, behavior)

	default:
		return NoOwner
	}
}

// CheckWrap evaluates adding braces around a bare body.
func CheckWrap(c candidate.Candidate, behavior config.Behavior) Status {
	body := c.Body.Node()
	if body.Kind == syntax.Block {
		return AlreadyBlock
	}

	if c.Owner.Node().Kind == syntax.ElseClause && body.Kind == syntax.IfStatement &&
		!behavior.Enabled(config.WrapElseIf) {
		return ElseIf
	}

	return Applicable
}

// CheckUnwrap evaluates removing the braces of a block body.
func CheckUnwrap(c candidate.Candidate, behavior config.Behavior) Status {
	block := c.Body.Node()
	if block.Kind != syntax.Block {
		return NotBlock
	}

	switch candidate.StatementCount(block) {
	case 0:
		return EmptyBlock

	case 1:

	default:
		return MultipleStatements
	}

	inner := c.Inner
	if inner == nil {
		inner, _ = candidate.SingleStatement(block)
	}

	switch inner.Kind {
	case syntax.DeclarationStatement, syntax.LabeledStatement:
		return EmbeddedDeclaration
	}

	if DanglingElseRisk(c.Body, inner, behavior.Enabled(config.Conservative)) {
		return DanglingElse
	}

	return Applicable
}
