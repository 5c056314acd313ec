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

// NewBlock returns a synthesized block with stmts as its statement list.
func NewBlock(edge Edge, stmts ...*Node) *Node {
	children := make([]*Node, len(stmts))
	for i, stmt := range stmts {
		children[i] = stmt.WithEdge(EdgeStatement)
	}

	return &Node{
		Kind:     Block,
		Edge:     edge,
		Pos:      NoPos,
		End:      NoPos,
		Keyword:  NoPos,
		Close:    NoPos,
		Children: children,
	}
}

// NewStatement returns a synthesized leaf statement.
func NewStatement(kind Kind, edge Edge, text string) *Node {
	return &Node{Kind: kind, Edge: edge, Pos: NoPos, End: NoPos, Keyword: NoPos, Close: NoPos, Text: text}
}

// NewConstruct returns a synthesized node with children.
func NewConstruct(kind Kind, edge Edge, children ...*Node) *Node {
	return &Node{Kind: kind, Edge: edge, Pos: NoPos, End: NoPos, Keyword: NoPos, Close: NoPos, Children: children}
}
