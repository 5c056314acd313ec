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

package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/braces/refactoring"
	"fillmore-labs.com/braces/settings"
)

// optionFlags are the command line overrides of the settings file.
func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "conservative", Usage: "Keep braces around any trailing if statement followed by else"},
		&cli.BoolFlag{Name: "wrap-else-if", Usage: `Add braces around the if statement of "else if"`},
		&cli.BoolFlag{Name: "generated", Usage: "Check generated files"},
		&cli.IntFlag{Name: "indent-size", Usage: "Number of spaces per indentation level"},
		&cli.BoolFlag{Name: "use-tabs", Usage: "Indent with tabs"},
	}
}

// loadProvider creates a provider from the settings file and command line overrides.
func loadProvider(c *cli.Context) (*refactoring.Provider, error) {
	s, err := settings.Load(c.String("config"), c.IsSet("config"))
	if err != nil {
		return nil, errors.WithHint(err, "See the settings package documentation for valid keys")
	}

	opts := s.Options()

	opts = appendFlag(c, opts, "conservative", c.Bool, refactoring.WithConservative)
	opts = appendFlag(c, opts, "wrap-else-if", c.Bool, refactoring.WithWrapElseIf)
	opts = appendFlag(c, opts, "generated", c.Bool, refactoring.WithGenerated)
	opts = appendFlag(c, opts, "indent-size", c.Int, refactoring.WithIndentSize)
	opts = appendFlag(c, opts, "use-tabs", c.Bool, refactoring.WithUseTabs)

	if c.IsSet("style") {
		style, err := refactoring.ParseStyle(c.String("style"))
		if err != nil {
			return nil, errors.WithHint(err, "Use one of always, never, when_multiline or none")
		}

		opts = append(opts, refactoring.WithStyle(style))
	}

	p := refactoring.New(opts...)

	slog.DebugContext(c.Context, "Provider configured", slog.Any("provider", p))

	return p, nil
}

// appendFlag appends an option for a flag set on the command line.
func appendFlag[T any](c *cli.Context, opts []refactoring.Option, name string, get func(string) T, constructor func(T) refactoring.Option) []refactoring.Option {
	if !c.IsSet(name) {
		return opts
	}

	return append(opts, constructor(get(name)))
}
