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

package refactoring

import (
	"context"
	"flag"
	"go/token"
	"io/fs"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/csharp"
	"fillmore-labs.com/braces/internal/dispatch"
	"fillmore-labs.com/braces/internal/source"
	"fillmore-labs.com/braces/internal/syntax"
)

// Public API constants for the braces refactorings.
const (
	Name = "braces"
	Doc  = `braces adds and removes braces around single-statement bodies`
	URL  = "https://pkg.go.dev/fillmore-labs.com/braces"
)

type (
	// Tree is a parsed C# source.
	Tree = syntax.Tree

	// Span is a selection in a source, in byte offsets.
	Span = syntax.Span

	// Action is an available rewrite.
	Action = dispatch.Action

	// File is the result of checking a single file.
	File = source.File

	// Style is the preferred use of braces checked by [Provider.Check].
	Style = config.Style
)

// Braces styles.
const (
	StyleNone          = config.StyleNone
	StyleAlways        = config.StyleAlways
	StyleNever         = config.StyleNever
	StyleWhenMultiline = config.StyleWhenMultiline
)

// ParseStyle returns the [Style] with the given name.
func ParseStyle(name string) (Style, error) {
	return config.ParseStyle(name)
}

// Provider offers braces rewrites and style checks.
type Provider struct {
	r *runOptions
}

// New creates a new braces [Provider].
// It allows for programmatic configuration using [Option], which is useful
// for integrating the refactorings into other tools.
func New(opts ...Option) *Provider {
	return &Provider{r: makeRunOptions(opts)}
}

// Parse parses C# source. A nil fset creates a new one.
func Parse(ctx context.Context, fset *token.FileSet, name string, src []byte) (*Tree, error) {
	return csharp.Parse(ctx, fset, name, src)
}

// Actions returns the rewrites available for the span. A non-empty selection yields none.
func (p *Provider) Actions(ctx context.Context, tree *Tree, span Span) []Action {
	return dispatch.Dispatch(ctx, tree, span, p.r.providers, p.r.behavior, p.r.format)
}

// Check reports the violations of the configured style, with suggested fixes.
func (p *Provider) Check(ctx context.Context, tree *Tree) ([]analysis.Diagnostic, error) {
	return p.r.options().Run(ctx, tree)
}

// Fix applies style fixes until the file is stable. It returns the fixed tree,
// the remaining diagnostics and the number of applied fixes.
func (p *Provider) Fix(ctx context.Context, tree *Tree) (*Tree, []analysis.Diagnostic, int, error) {
	return source.Fix(ctx, tree, p.r.options())
}

// CheckFiles checks the named files of fsys in parallel, applying fixes when requested.
// Results are in input order.
func (p *Provider) CheckFiles(ctx context.Context, fsys fs.FS, names []string, fix bool) ([]File, error) {
	return source.Check(ctx, fsys, names, p.r.options(), fix)
}

// Files returns the sorted names of the files in fsys matching any of the patterns,
// or all C# files without patterns.
func Files(fsys fs.FS, patterns ...string) ([]string, error) {
	return source.Files(fsys, patterns...)
}

// RegisterFlags binds the provider's options to command line flag values.
// A nil flag set value defaults to the program's command line.
func (p *Provider) RegisterFlags(flags *flag.FlagSet) {
	registerFlags(flags, p.r)
}

// LogValue implements [slog.LogValuer].
func (p *Provider) LogValue() slog.Value {
	return p.r.LogValue()
}
