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

// Cursor is a position in a tree, recording the path from the root to the current node.
//
// The zero Cursor is invalid.
type Cursor struct {
	path []*Node
}

// NewCursor returns a cursor positioned at root.
func NewCursor(root *Node) Cursor {
	return Cursor{path: []*Node{root}}
}

// Valid reports whether the cursor points to a node.
func (c Cursor) Valid() bool {
	return len(c.path) > 0
}

// Node returns the current node.
func (c Cursor) Node() *Node {
	if len(c.path) == 0 {
		return nil
	}

	return c.path[len(c.path)-1]
}

// Root returns the root node of the path.
func (c Cursor) Root() *Node {
	if len(c.path) == 0 {
		return nil
	}

	return c.path[0]
}

// Parent returns the cursor of the parent node, if any.
func (c Cursor) Parent() (Cursor, bool) {
	if len(c.path) < 2 {
		return Cursor{}, false
	}

	return Cursor{path: c.path[:len(c.path)-1]}, true
}

// Child returns a cursor for child n of the current node.
func (c Cursor) Child(n *Node) Cursor {
	return Cursor{path: append(slices.Clip(c.path), n)}
}

// Children yields cursors for all children of the current node.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for _, n := range c.Node().Children {
			if !yield(c.Child(n)) {
				return
			}
		}
	}
}

// ChildAt returns a cursor for the child in the given edge slot.
func (c Cursor) ChildAt(edge Edge) (Cursor, bool) {
	for _, n := range c.Node().Children {
		if n.Edge == edge {
			return c.Child(n), true
		}
	}

	return Cursor{}, false
}

// Preorder yields the current node and all descendants in depth-first order.
func (c Cursor) Preorder() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		c.preorder(yield)
	}
}

func (c Cursor) preorder(yield func(Cursor) bool) bool {
	if !yield(c) {
		return false
	}

	for child := range c.Children() {
		if !child.preorder(yield) {
			return false
		}
	}

	return true
}

// Innermost returns the deepest node below the current node containing offset.
//
// When offset is the end of one child and the start of the next, the later child wins.
func (c Cursor) Innermost(offset int) Cursor {
	for {
		var next *Node

		for _, n := range c.Node().Children {
			if !n.Valid() {
				continue
			}

			if n.Pos <= offset && offset < n.End {
				next = n
				break
			}

			if offset == n.End {
				next = n // keep looking for a child starting here
			}
		}

		if next == nil {
			return c
		}

		c = c.Child(next)
	}
}

// Replace returns a new root where the current node is replaced by n.
//
// All nodes on the path are copied, everything else is shared with the original tree.
func (c Cursor) Replace(n *Node) *Node {
	for i := len(c.path) - 2; i >= 0; i-- {
		parent, old := c.path[i], c.path[i+1]

		idx := slices.Index(parent.Children, old)
		if idx < 0 {
			panic("syntax: cursor path is not connected")
		}

		n = parent.withChild(idx, n)
	}

	return n
}
