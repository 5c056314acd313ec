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

package source

import (
	"context"
	"io/fs"
	"log/slog"
	"runtime"
	"runtime/trace"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/csharp"
	"fillmore-labs.com/braces/internal/report"
	"fillmore-labs.com/braces/internal/run"
	"fillmore-labs.com/braces/internal/syntax"
)

// MaxIterations limits the rounds of [Fix].
const MaxIterations = 10

// File is the result of checking a single file.
type File struct {
	Name string

	// Tree is the parsed file, after fixes when they were applied.
	Tree *syntax.Tree

	// Diagnostics are the remaining style violations.
	Diagnostics []analysis.Diagnostic

	// Original is the file content before fixes.
	Original []byte

	// Applied is the number of applied fixes.
	Applied int

	// Err is set when the file could not be checked.
	Err error
}

// Changed reports whether fixes changed the file.
func (f File) Changed() bool {
	return f.Applied > 0
}

// Check parses and checks the named files of fsys in parallel, applying fixes when requested.
//
// Results are in input order. Per-file failures are recorded in [File.Err],
// the returned error is only set when the context is canceled.
func Check(ctx context.Context, fsys fs.FS, names []string, opts *run.Options, fix bool) ([]File, error) {
	ctx, task := trace.NewTask(ctx, "CheckFiles")
	defer task.End()

	files := make([]File, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files[i] = checkFile(ctx, fsys, name, opts, fix)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

func checkFile(ctx context.Context, fsys fs.FS, name string, opts *run.Options, fix bool) File {
	file := File{Name: name}

	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		file.Err = errors.Wrapf(err, "can't read %s", name)

		return file
	}

	file.Original = src

	tree, err := csharp.Parse(ctx, nil, name, src)
	if err != nil {
		file.Err = err

		return file
	}

	if fix {
		file.Tree, file.Diagnostics, file.Applied, file.Err = Fix(ctx, tree, opts)
	} else {
		file.Tree = tree
		file.Diagnostics, file.Err = opts.Run(ctx, tree)
	}

	if file.Err != nil {
		slog.DebugContext(ctx, "Check failed", slog.String("file", name), slog.Any("error", file.Err))
	}

	return file
}

// Fix applies the suggested fixes of the style check repeatedly, until no more apply
// or [MaxIterations] is reached. Overlapping fixes are deferred to the next round.
//
// It returns the final tree, the remaining diagnostics and the number of applied fixes.
func Fix(ctx context.Context, tree *syntax.Tree, opts *run.Options) (*syntax.Tree, []analysis.Diagnostic, int, error) {
	defer trace.StartRegion(ctx, "Fix").End()

	applied := 0

	for range MaxIterations {
		diagnostics, err := opts.Run(ctx, tree)
		if err != nil {
			return tree, nil, applied, err
		}

		src, n, err := report.ApplyFixes(tree, diagnostics)
		if err != nil {
			return tree, diagnostics, applied, err
		}

		if n == 0 {
			return tree, diagnostics, applied, nil
		}

		applied += n

		slog.DebugContext(ctx, "Applied fixes", slog.String("file", tree.Name), slog.Int("count", n))

		if tree, err = csharp.Parse(ctx, nil, tree.Name, src); err != nil {
			return nil, nil, applied, err
		}
	}

	diagnostics, err := opts.Run(ctx, tree)

	return tree, diagnostics, applied, err
}
