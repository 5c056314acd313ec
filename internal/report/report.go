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

// Package report turns braces rewrites into diagnostics and applies their fixes.
package report

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/rewrite"
	"fillmore-labs.com/braces/internal/syntax"
)

// Diagnostic creates a diagnostic for a candidate with its rewrite as suggested fix.
func Diagnostic(tree *syntax.Tree, c candidate.Candidate, result rewrite.Result) analysis.Diagnostic {
	owner, body := c.Owner.Node(), c.Body.Node()
	name := classify.Name(owner)

	var message string
	switch c.Op {
	case candidate.Wrap:
		message = fmt.Sprintf("Missing braces around %s body (br:add)", name)

	case candidate.Unwrap:
		message = fmt.Sprintf("Unnecessary braces around %s body (br:rem)", name)
	}

	diagnostic := analysis.Diagnostic{
		Pos:     tree.Pos(body.Pos),
		End:     tree.Pos(body.End),
		Message: message,
		Related: []analysis.RelatedInformation{{
			Pos:     tree.Pos(owner.Keyword),
			Message: "Body of this " + name,
		}},
	}

	if len(result.Edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: result.Message, TextEdits: result.Edits}}
	}

	return diagnostic
}

// InternalError creates an internal error diagnostic.
// These errors indicate bugs in the engine rather than issues in the source.
func InternalError(tree *syntax.Tree, pos, end int, format string, args ...any) analysis.Diagnostic {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	return analysis.Diagnostic{Pos: tree.Pos(pos), End: tree.Pos(end), Message: string(msg)}
}

// Print writes diagnostics in "file:line:column: message" form, sorted by position.
func Print(w io.Writer, tree *syntax.Tree, diagnostics []analysis.Diagnostic) error {
	sorted := slices.SortedStableFunc(slices.Values(diagnostics), func(a, b analysis.Diagnostic) int {
		return int(a.Pos - b.Pos)
	})

	for _, d := range sorted {
		if _, err := fmt.Fprintf(w, "%s: %s\n", tree.File.Position(d.Pos), d.Message); err != nil {
			return err
		}
	}

	return nil
}
