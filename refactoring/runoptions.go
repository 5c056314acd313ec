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
	"log/slog"

	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/run"
)

// runOptions represent configuration options for the braces provider.
type runOptions struct {
	// providers represents the refactorings to be enabled.
	providers config.Providers

	// behavior holds behavioral options.
	behavior config.Behavior

	// style is the style checked by [Provider.Check].
	style config.Style

	// format controls the layout of inserted braces.
	format config.Format
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		providers: config.DefaultProviders(),
		behavior:  config.DefaultBehavior(),
		style:     config.StyleAlways,
		format:    config.DefaultFormat(),
	}
}

// options returns the style check options.
func (r *runOptions) options() *run.Options {
	return &run.Options{
		Behavior: r.behavior,
		Style:    r.style,
		Format:   r.format,
	}
}

// LogValue implements [slog.LogValuer].
func (r *runOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("add", r.providers.Enabled(config.AddBraces)),
		slog.Bool("remove", r.providers.Enabled(config.RemoveBraces)),
		slog.Bool("generated", r.behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("conservative", r.behavior.Enabled(config.Conservative)),
		slog.Bool("wrap-else-if", r.behavior.Enabled(config.WrapElseIf)),
		slog.String("style", r.style.String()),
		slog.Int("indent-size", r.format.IndentSize),
		slog.Bool("use-tabs", r.format.UseTabs),
	)
}
