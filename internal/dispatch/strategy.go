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

package dispatch

import (
	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/syntax"
)

// AddInner wraps the simple statement under the cursor when it is the bare body of its parent.
func AddInner(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.Inner {
		return candidate.Candidate{}, false
	}

	return wrap(c)
}

// AddHeader wraps the bare body of the controlling construct whose header holds the cursor.
func AddHeader(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.Header {
		return candidate.Candidate{}, false
	}

	return wrapOwner(c)
}

// AddElse wraps the body of the else clause under the cursor.
// An "else if" is rejected by the check unless [config.WrapElseIf] is enabled.
func AddElse(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.ElseKeyword {
		return candidate.Candidate{}, false
	}

	return wrapOwner(c)
}

// RemoveInner unwraps the block containing the simple statement under the cursor.
func RemoveInner(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.Inner {
		return candidate.Candidate{}, false
	}

	block, ok := c.Parent()
	if !ok || block.Node().Kind != syntax.Block {
		return candidate.Candidate{}, false
	}

	return unwrap(block)
}

// RemoveBraces unwraps the block whose braces hold the cursor.
func RemoveBraces(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.Braces {
		return candidate.Candidate{}, false
	}

	return unwrap(c)
}

// RemoveHeader unwraps the block body of the controlling construct whose header holds the cursor.
func RemoveHeader(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.Header {
		return candidate.Candidate{}, false
	}

	return unwrapOwner(c)
}

// RemoveElse unwraps the block body of the else clause under the cursor.
func RemoveElse(c syntax.Cursor, loc classify.Location, _ config.Behavior) (candidate.Candidate, bool) {
	if loc != classify.ElseKeyword {
		return candidate.Candidate{}, false
	}

	return unwrapOwner(c)
}

// wrap returns the wrap candidate for a statement in a body slot.
func wrap(body syntax.Cursor) (candidate.Candidate, bool) {
	cand, ok := candidate.ForBody(body)
	if !ok || cand.Op != candidate.Wrap {
		return candidate.Candidate{}, false
	}

	return cand, true
}

// wrapOwner returns the wrap candidate for the bare body of owner.
func wrapOwner(owner syntax.Cursor) (candidate.Candidate, bool) {
	cand, ok := candidate.ForOwner(owner)
	if !ok || cand.Op != candidate.Wrap {
		return candidate.Candidate{}, false
	}

	return cand, true
}

// unwrap returns the unwrap candidate for a block in a body slot with a single statement.
func unwrap(block syntax.Cursor) (candidate.Candidate, bool) {
	cand, ok := candidate.ForBody(block)
	if !ok || cand.Op != candidate.Unwrap || cand.Inner == nil {
		return candidate.Candidate{}, false
	}

	return cand, true
}

// unwrapOwner returns the unwrap candidate for the single-statement block body of owner.
func unwrapOwner(owner syntax.Cursor) (candidate.Candidate, bool) {
	cand, ok := candidate.ForOwner(owner)
	if !ok || cand.Op != candidate.Unwrap || cand.Inner == nil {
		return candidate.Candidate{}, false
	}

	return cand, true
}
