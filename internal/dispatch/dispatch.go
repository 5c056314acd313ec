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

// Package dispatch selects the braces actions available at a cursor position.
//
// Each provider owns an ordered list of strategies. A strategy maps the located cursor
// to a candidate; the first candidate passing its check yields the provider's action.
// Strategies key on disjoint [classify.Location]s, so at most one of them matches.
package dispatch

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/braces/internal/candidate"
	"fillmore-labs.com/braces/internal/candidate/check"
	"fillmore-labs.com/braces/internal/classify"
	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/rewrite"
	"fillmore-labs.com/braces/internal/syntax"
)

// Strategy maps a located cursor to a candidate.
type Strategy func(c syntax.Cursor, loc classify.Location, behavior config.Behavior) (candidate.Candidate, bool)

// AddStrategies are tried in order by the add braces provider.
var AddStrategies = []Strategy{AddInner, AddHeader, AddElse}

// RemoveStrategies are tried in order by the remove braces provider.
var RemoveStrategies = []Strategy{RemoveInner, RemoveBraces, RemoveHeader, RemoveElse}

// Action is an available rewrite. The rewrite is computed on demand.
type Action struct {
	Title    string
	Provider config.ProviderFlags
	Pos, End int // Target node

	tree      *syntax.Tree
	candidate candidate.Candidate
	format    config.Format
}

// Compute performs the rewrite.
func (a Action) Compute() rewrite.Result {
	switch a.candidate.Op {
	case candidate.Wrap:
		return rewrite.Wrap(a.tree, a.candidate, a.format)

	default:
		return rewrite.Unwrap(a.tree, a.candidate, a.format)
	}
}

// Candidate returns the candidate of the action.
func (a Action) Candidate() candidate.Candidate {
	return a.candidate
}

// Dispatch returns the actions available for the span.
//
// A non-empty span yields no actions. Every enabled provider contributes at most one action.
func Dispatch(ctx context.Context, tree *syntax.Tree, span syntax.Span, providers config.Providers, behavior config.Behavior, format config.Format) []Action {
	defer trace.StartRegion(ctx, "Dispatch").End()

	if !span.Empty() || tree == nil || tree.Root == nil {
		return nil
	}

	c, loc := classify.Locate(tree.Cursor(), span.Start)

	slog.DebugContext(ctx, "Cursor located",
		slog.Int("offset", span.Start),
		slog.String("node", c.Node().Kind.String()),
		slog.String("location", loc.String()),
	)

	var actions []Action

	if providers.Enabled(config.AddBraces) {
		if cand, ok := first(ctx, AddStrategies, c, loc, behavior); ok {
			actions = append(actions, newAction(tree, cand, config.AddBraces, format))
		}
	}

	if providers.Enabled(config.RemoveBraces) {
		if cand, ok := first(ctx, RemoveStrategies, c, loc, behavior); ok {
			actions = append(actions, newAction(tree, cand, config.RemoveBraces, format))
		}
	}

	return actions
}

func first(ctx context.Context, strategies []Strategy, c syntax.Cursor, loc classify.Location, behavior config.Behavior) (candidate.Candidate, bool) {
	for _, strategy := range strategies {
		cand, ok := strategy(c, loc, behavior)
		if !ok {
			continue
		}

		if status := check.Check(cand, behavior); !status.Applicable() {
			slog.DebugContext(ctx, "Candidate rejected",
				slog.String("op", cand.Op.String()),
				slog.String("owner", cand.Owner.Node().Kind.String()),
				slog.String("status", status.String()),
			)

			continue
		}

		return cand, true
	}

	return candidate.Candidate{}, false
}

func newAction(tree *syntax.Tree, c candidate.Candidate, provider config.ProviderFlags, format config.Format) Action {
	title := "Add braces"
	if c.Op == candidate.Unwrap {
		title = "Remove braces"
	}

	body := c.Body.Node()

	return Action{
		Title:     title,
		Provider:  provider,
		Pos:       body.Pos,
		End:       body.End,
		tree:      tree,
		candidate: c,
		format:    format,
	}
}
