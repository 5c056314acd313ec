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

// Package candidate pairs statements with the construct owning their body slot.
package candidate

import (
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/syntax"
)

// Operation is the rewrite a [Candidate] is considered for.
type Operation uint8

//go:generate go tool stringer -type Operation -linecomment
const (
	// Wrap inserts a block around a bare body statement.
	Wrap Operation = iota // wrap

	// Unwrap replaces a block body with its single statement.
	Unwrap // unwrap
)

// Candidate is a potential rewrite of the body slot of Owner.
//
// For [Wrap], Body is the bare statement in the body slot.
// For [Unwrap], Body is the block in the body slot and Inner is its single statement.
type Candidate struct {
	Op    Operation
	Owner syntax.Cursor // Controlling construct or else clause
	Body  syntax.Cursor // Node in the body slot of Owner
	Inner *syntax.Node  // Single statement of the block, Unwrap only
}

// Valid reports whether the candidate has an owner.
func (c Candidate) Valid() bool {
	return c.Owner.Valid() && c.Body.Valid()
}

// ForBody creates a candidate from the node in a body slot of a controlling construct or else clause.
//
// The returned candidate is for [Wrap] when the body is a bare statement and for [Unwrap]
// when it is a block, whatever the statement count. Use the checks to filter candidates.
func ForBody(body syntax.Cursor) (Candidate, bool) {
	owner, ok := classify.Owner(body)
	if !ok {
		return Candidate{}, false
	}

	if _, ok := BareBody(owner.Node()); ok {
		return Candidate{Op: Wrap, Owner: owner, Body: body}, true
	}

	inner, _ := SingleStatement(body.Node())

	return Candidate{Op: Unwrap, Owner: owner, Body: body, Inner: inner}, true
}

// ForOwner creates a candidate for the body slot of a controlling construct or else clause.
func ForOwner(owner syntax.Cursor) (Candidate, bool) {
	if !classify.Owning(owner.Node()) {
		return Candidate{}, false
	}

	body, ok := owner.ChildAt(syntax.EdgeBody)
	if !ok {
		return Candidate{}, false
	}

	return ForBody(body)
}

// SingleStatement returns the statement of a block containing exactly one statement.
func SingleStatement(block *syntax.Node) (*syntax.Node, bool) {
	if block == nil || block.Kind != syntax.Block {
		return nil, false
	}

	var single *syntax.Node

	for stmt := range block.Statements() {
		if single != nil {
			return nil, false
		}

		single = stmt
	}

	return single, single != nil
}

// BareBody returns the body of owner if it is a simple statement and not a block.
func BareBody(owner *syntax.Node) (*syntax.Node, bool) {
	if !classify.Owning(owner) {
		return nil, false
	}

	body := owner.Body()
	if body == nil || body.Kind == syntax.Block {
		return nil, false
	}

	return body, true
}

// StatementCount returns the number of statements in a block.
func StatementCount(block *syntax.Node) int {
	count := 0
	for range block.Statements() {
		count++
	}

	return count
}
