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

// Package run checks whole files against a braces style.
package run

import (
	"context"
	"log/slog"
	"runtime/trace"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/astutil"
	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/candidate/check"
	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/report"
	"fillmore-labs.com/braces/internal/rewrite"
	"fillmore-labs.com/braces/internal/syntax"
)

// ErrSyntax is returned for sources the parser had to recover from.
var ErrSyntax = errors.New("syntax errors")

// Run checks a file against the configured style.
//
// Every body slot violating the style yields a diagnostic with the rewrite as suggested fix.
// Generated files are skipped unless enabled, and so are files or constructs carrying
// a nolint:braces comment.
func (r *Options) Run(ctx context.Context, tree *syntax.Tree) ([]analysis.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "Braces")
	defer task.End()

	currentFile := astutil.NewCurrentFile(tree)
	if !currentFile.Valid() {
		return nil, errors.AssertionFailedf("file without valid info")
	}

	trace.Log(ctx, "file", tree.Name)

	if tree.SyntaxErrors {
		return nil, errors.Wrapf(ErrSyntax, "%s", tree.Name)
	}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		slog.DebugContext(ctx, "Skipping generated file", slog.String("file", tree.Name))

		return nil, nil
	}

	if r.Style == config.StyleNone {
		return nil, nil
	}

	// Skip files with nolint comment
	if currentFile.FileNoLint() {
		return nil, nil
	}

	defer trace.StartRegion(ctx, "Check").End()

	var diagnostics []analysis.Diagnostic

	for c := range tree.Cursor().Preorder() {
		cand, ok := candidate.ForBody(c)
		if !ok || !r.violates(tree, cand) {
			continue
		}

		if status := check.Check(cand, r.Behavior); !status.Applicable() {
			slog.DebugContext(ctx, "Style violation not fixable",
				slog.String("position", tree.Position(cand.Body.Node().Pos).String()),
				slog.String("status", status.String()),
			)

			continue
		}

		owner := cand.Owner.Node()

		// Skip constructs with nolint comment
		if currentFile.NoLintComment(owner.Keyword) {
			continue
		}

		diagnostics = append(diagnostics, r.diagnostic(tree, cand))
	}

	return diagnostics, nil
}

// diagnostic computes the rewrite of a candidate and reports it.
func (r *Options) diagnostic(tree *syntax.Tree, cand candidate.Candidate) analysis.Diagnostic {
	body := cand.Body.Node()

	var result rewrite.Result
	switch cand.Op {
	case candidate.Wrap:
		result = rewrite.Wrap(tree, cand, r.Format)

	case candidate.Unwrap:
		result = rewrite.Unwrap(tree, cand, r.Format)

	default:
		return report.InternalError(tree, body.Pos, body.End, "unexpected operation %s", cand.Op)
	}

	if len(result.Edits) == 0 {
		return report.InternalError(tree, body.Pos, body.End, "%s produced no edits", cand.Op)
	}

	return report.Diagnostic(tree, cand, result)
}

// violates reports whether the body slot of the candidate violates the style.
func (r *Options) violates(tree *syntax.Tree, c candidate.Candidate) bool {
	switch r.Style {
	case config.StyleAlways:
		return c.Op == candidate.Wrap

	case config.StyleNever:
		return c.Op == candidate.Unwrap && c.Inner != nil

	case config.StyleWhenMultiline:
		return c.Op == candidate.Wrap && multiline(tree, c)

	default:
		return false
	}
}

// multiline reports whether the construct spans more than one line, from its keyword to the end of the body.
func multiline(tree *syntax.Tree, c candidate.Candidate) bool {
	return tree.Line(c.Owner.Node().Keyword) != tree.Line(c.Body.Node().End)
}
