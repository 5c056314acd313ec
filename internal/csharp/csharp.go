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

// Package csharp converts tree-sitter C# parse trees into [syntax.Tree]s.
//
// Only statement-level structure is kept: controlling constructs (if, while, for,
// foreach, do, lock, using, fixed), else clauses, blocks and other statements.
// Declarations, expressions and other nodes are flattened, so statements nested in
// lambdas or members become children of the nearest enclosing statement.
package csharp

import (
	"context"
	"go/token"
	"runtime/trace"
	"strings"

	"github.com/cockroachdb/errors"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"fillmore-labs.com/braces/internal/syntax"
)

// ErrParse is returned when the parser produced no tree.
var ErrParse = errors.New("parse failed")

// Parse parses C# source into a [syntax.Tree].
//
// Syntax errors do not fail the parse, they set [syntax.Tree.SyntaxErrors].
func Parse(ctx context.Context, fset *token.FileSet, name string, src []byte) (*syntax.Tree, error) {
	defer trace.StartRegion(ctx, "ParseCSharp").End()

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_csharp.Language())); err != nil {
		return nil, errors.Wrap(err, "can't load C# grammar")
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, errors.Wrapf(ErrParse, "%s", name)
	}
	defer tree.Close()

	b := builder{src: src}

	tsRoot := tree.RootNode()
	root := &syntax.Node{
		Kind:     syntax.CompilationUnit,
		Pos:      0,
		End:      len(src),
		Keyword:  syntax.NoPos,
		Close:    syntax.NoPos,
		Children: b.nested(tsRoot),
	}

	t := syntax.NewTree(fset, name, src, root)
	t.Comments = b.comments
	t.SyntaxErrors = tsRoot.HasError()

	return t, nil
}

type builder struct {
	src      []byte
	comments []syntax.Comment
}

// nested converts all children of n, flattening nodes that are not statements.
func (b *builder) nested(n *tree_sitter.Node) []*syntax.Node {
	var nodes []*syntax.Node

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil {
			continue
		}

		switch {
		case child.Kind() == "comment":
			b.comment(child)

		case !child.IsNamed():
			continue

		case statement(child):
			nodes = append(nodes, b.convert(child, syntax.EdgeNested))

		default:
			nodes = append(nodes, b.nested(child)...)
		}
	}

	return nodes
}

func (b *builder) comment(n *tree_sitter.Node) {
	start, end := int(n.StartByte()), int(n.EndByte())
	b.comments = append(b.comments, syntax.Comment{Pos: start, End: end, Text: string(b.src[start:end])})
}

// convert translates a statement node.
func (b *builder) convert(n *tree_sitter.Node, edge syntax.Edge) *syntax.Node {
	start, end := int(n.StartByte()), int(n.EndByte())

	node := &syntax.Node{
		Kind:    kindOf(n.Kind()),
		Edge:    edge,
		Pos:     start,
		End:     end,
		Keyword: start,
		Close:   syntax.NoPos,
	}

	switch node.Kind {
	case syntax.Block:
		node.Children = b.block(n, node)

	case syntax.IfStatement:
		node.Children = b.ifStatement(n)

	case syntax.DoStatement:
		node.Children = b.construct(n, true)

	case syntax.WhileStatement, syntax.ForStatement, syntax.ForEachStatement,
		syntax.LockStatement, syntax.UsingStatement, syntax.FixedStatement:
		node.Children = b.construct(n, false)

	default:
		node.Children = b.nested(n)
	}

	if len(node.Children) == 0 && node.Kind != syntax.Block {
		node.Text = string(b.src[start:end])
	}

	return node
}

// block converts the statement list of a block and records its braces.
func (b *builder) block(n *tree_sitter.Node, node *syntax.Node) []*syntax.Node {
	var children []*syntax.Node

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil {
			continue
		}

		switch kind := child.Kind(); {
		case kind == "comment":
			b.comment(child)

		case kind == "{" && !child.IsNamed():
			node.Keyword = int(child.StartByte())

		case kind == "}" && !child.IsNamed():
			if !child.IsMissing() {
				node.Close = int(child.StartByte())
			}

		case !child.IsNamed():
			continue

		case statement(child):
			children = append(children, b.convert(child, syntax.EdgeStatement))

		default:
			children = append(children, b.nested(child)...)
		}
	}

	return children
}

// construct converts a loop or resource statement. The body is the last statement child,
// or the first one for do statements.
func (b *builder) construct(n *tree_sitter.Node, first bool) []*syntax.Node {
	body := -1

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil || !statement(child) {
			continue
		}

		body = int(i)
		if first {
			break
		}
	}

	var children []*syntax.Node

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil {
			continue
		}

		switch {
		case int(i) == body:
			children = append(children, b.convert(child, syntax.EdgeBody))

		case child.Kind() == "comment":
			b.comment(child)

		case !child.IsNamed():
			continue

		case statement(child):
			children = append(children, b.convert(child, syntax.EdgeNested))

		default:
			children = append(children, b.nested(child)...)
		}
	}

	return children
}

// ifStatement converts an if statement, synthesizing an else clause
// from the "else" keyword up to the end of the alternative.
func (b *builder) ifStatement(n *tree_sitter.Node) []*syntax.Node {
	var (
		children    []*syntax.Node
		consequence bool
		elseKeyword = -1
	)

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil {
			continue
		}

		switch kind := child.Kind(); {
		case kind == "comment":
			b.comment(child)

		case kind == "else" && !child.IsNamed():
			elseKeyword = int(child.StartByte())

		case !child.IsNamed():
			continue

		case statement(child) && elseKeyword >= 0:
			alternative := b.convert(child, syntax.EdgeBody)
			children = append(children, &syntax.Node{
				Kind:     syntax.ElseClause,
				Edge:     syntax.EdgeElse,
				Pos:      elseKeyword,
				End:      alternative.End,
				Keyword:  elseKeyword,
				Close:    syntax.NoPos,
				Children: []*syntax.Node{alternative},
			})

		case statement(child) && !consequence:
			consequence = true

			children = append(children, b.convert(child, syntax.EdgeBody))

		case statement(child):
			children = append(children, b.convert(child, syntax.EdgeNested))

		default:
			children = append(children, b.nested(child)...)
		}
	}

	return children
}

// statement reports whether a tree-sitter node is a C# statement.
func statement(n *tree_sitter.Node) bool {
	if !n.IsNamed() {
		return false
	}

	switch kind := n.Kind(); kind {
	case "block":
		return true

	case "global_statement":
		return false

	default:
		return strings.HasSuffix(kind, "_statement")
	}
}

// kindOf maps tree-sitter node kinds to [syntax.Kind].
func kindOf(kind string) syntax.Kind {
	switch kind {
	// keep-sorted start
	case "block":
		return syntax.Block
	case "do_statement":
		return syntax.DoStatement
	case "fixed_statement":
		return syntax.FixedStatement
	case "for_statement":
		return syntax.ForStatement
	case "foreach_statement":
		return syntax.ForEachStatement
	case "if_statement":
		return syntax.IfStatement
	case "labeled_statement":
		return syntax.LabeledStatement
	case "local_declaration_statement", "local_function_statement":
		return syntax.DeclarationStatement
	case "lock_statement":
		return syntax.LockStatement
	case "using_statement":
		return syntax.UsingStatement
	case "while_statement":
		return syntax.WhileStatement
	default:
		return syntax.OtherStatement
		// keep-sorted end
	}
}
