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

import (
	"iter"
	"slices"
)

// NoPos is the offset of synthesized nodes without a source location.
const NoPos = -1

// Node is an immutable statement-level syntax node.
//
// Nodes are never modified after construction; rewrites produce new nodes and share
// unchanged subtrees.
type Node struct {
	Kind Kind
	Edge Edge // Role of this node in its parent

	Pos, End int // Byte offsets of the node in the source, NoPos when synthesized

	// Keyword is the offset of the construct keyword ("if", "while", "else", ...),
	// or of the opening brace of a block.
	Keyword int

	// Close is the offset of the closing brace of a block, NoPos if missing.
	Close int

	// Text is the source text of statements without children.
	Text string

	Children []*Node
}

// Valid reports whether the node has a source location.
func (n *Node) Valid() bool {
	return n != nil && n.Pos != NoPos
}

// Contains reports whether offset lies within the node, both ends inclusive.
func (n *Node) Contains(offset int) bool {
	return n.Valid() && n.Pos <= offset && offset <= n.End
}

// Body returns the body slot of a controlling construct or else clause.
func (n *Node) Body() *Node {
	return n.child(EdgeBody)
}

// Else returns the else clause of an if statement.
func (n *Node) Else() *Node {
	if n.Kind != IfStatement {
		return nil
	}

	return n.child(EdgeElse)
}

func (n *Node) child(edge Edge) *Node {
	for _, c := range n.Children {
		if c.Edge == edge {
			return c
		}
	}

	return nil
}

// Statements yields the direct statement list of a block.
func (n *Node) Statements() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if c.Edge != EdgeStatement {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// WithEdge returns a shallow copy of n with a different edge.
func (n *Node) WithEdge(edge Edge) *Node {
	if n.Edge == edge {
		return n
	}

	c := *n
	c.Edge = edge

	return &c
}

// withChild returns a shallow copy of n with the child at index i replaced.
func (n *Node) withChild(i int, child *Node) *Node {
	c := *n
	c.Children = slices.Clone(n.Children)
	c.Children[i] = child

	return &c
}

// Preorder yields n and all its descendants in depth-first order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}
