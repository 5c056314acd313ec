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
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/braces/internal/report"
	"fillmore-labs.com/braces/internal/run"
	"fillmore-labs.com/braces/refactoring"
)

var (
	// ErrPosition is returned for cursor positions outside the file.
	ErrPosition = errors.New("invalid position")

	// ErrNoAction is returned when the requested rewrite is not available.
	ErrNoAction = errors.New("no action available")
)

func positionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "Cursor byte offset", Value: -1},
		&cli.IntFlag{Name: "line", Aliases: []string{"l"}, Usage: "Cursor line, 1-based"},
		&cli.IntFlag{Name: "column", Usage: "Cursor column in bytes, 1-based", Value: 1},
	}
}

func actionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "actions",
		Usage:     "List the rewrites available at a position",
		ArgsUsage: "FILE",
		Flags:     append(positionFlags(), optionFlags()...),
		Action: func(c *cli.Context) error {
			tree, span, err := readPosition(c)
			if err != nil {
				return err
			}

			p, err := loadProvider(c)
			if err != nil {
				return err
			}

			for _, a := range p.Actions(c.Context, tree, span) {
				if _, err := fmt.Fprintf(c.App.Writer, "%s: %s\n", tree.Position(a.Pos), a.Title); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Add or remove braces at a position",
		ArgsUsage: "FILE",
		Flags: append(append(positionFlags(), optionFlags()...),
			&cli.BoolFlag{Name: "add", Usage: "Add braces"},
			&cli.BoolFlag{Name: "remove", Usage: "Remove braces"},
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "Write result to the source file instead of stdout"},
			&cli.BoolFlag{Name: "diff", Aliases: []string{"d"}, Usage: "Display a diff instead of the rewritten source"},
		),
		Action: func(c *cli.Context) error {
			title, err := requestedAction(c)
			if err != nil {
				return err
			}

			tree, span, err := readPosition(c)
			if err != nil {
				return err
			}

			p, err := loadProvider(c)
			if err != nil {
				return err
			}

			for _, a := range p.Actions(c.Context, tree, span) {
				if a.Title != title {
					continue
				}

				src, err := report.ApplyEdits(tree, a.Compute().Edits)
				if err != nil {
					return err
				}

				return output(c, tree.Name, tree.Src, src)
			}

			return errors.WithHint(errors.Wrapf(ErrNoAction, "%s at %s", title, tree.Position(span.Start)),
				"Use the actions command to list the available rewrites")
		},
	}
}

func requestedAction(c *cli.Context) (string, error) {
	switch add, remove := c.Bool("add"), c.Bool("remove"); {
	case add && !remove:
		return "Add braces", nil

	case remove && !add:
		return "Remove braces", nil

	default:
		return "", errors.WithHint(errors.New("exactly one of --add or --remove is required"), "Use --add or --remove")
	}
}

// readPosition parses the file argument and resolves the cursor position.
func readPosition(c *cli.Context) (*refactoring.Tree, refactoring.Span, error) {
	if c.NArg() != 1 {
		return nil, refactoring.Span{}, errors.WithHint(errors.New("expected one file argument"), "Usage: "+c.Command.HelpName+" "+c.Command.ArgsUsage)
	}

	name := c.Args().First()

	src, err := os.ReadFile(name)
	if err != nil {
		return nil, refactoring.Span{}, errors.Wrap(err, "can't read source")
	}

	tree, err := refactoring.Parse(c.Context, nil, name, src)
	if err != nil {
		return nil, refactoring.Span{}, err
	}

	if tree.SyntaxErrors {
		return nil, refactoring.Span{}, errors.WithHint(errors.Wrapf(run.ErrSyntax, "%s", name), "Fix the syntax errors first")
	}

	offset := c.Int("offset")
	if offset < 0 {
		var ok bool
		if offset, ok = tree.OffsetOf(c.Int("line"), c.Int("column")); !ok {
			return nil, refactoring.Span{}, errors.WithHint(
				errors.Wrapf(ErrPosition, "line %d, column %d", c.Int("line"), c.Int("column")),
				"Use --offset or --line and --column within the file")
		}
	} else if offset > len(src) {
		return nil, refactoring.Span{}, errors.WithHint(errors.Wrapf(ErrPosition, "offset %d", offset),
			fmt.Sprintf("The file has %d bytes", len(src)))
	}

	return tree, refactoring.Span{Start: offset, End: offset}, nil
}

// output writes the rewritten source, a diff or updates the file, depending on the flags.
func output(c *cli.Context, name string, before, after []byte) error {
	switch {
	case c.Bool("diff"):
		diff, err := report.Diff(name, before, after)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(c.App.Writer, diff)

		return err

	case c.Bool("write"):
		return writeFile(name, after)

	default:
		_, err := c.App.Writer.Write(after)

		return err
	}
}

// writeFile replaces the content of an existing file, keeping its permissions.
func writeFile(name string, data []byte) error {
	info, err := os.Stat(name)
	if err != nil {
		return errors.Wrap(err, "can't write source")
	}

	if err := os.WriteFile(name, data, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "can't write source")
	}

	return nil
}
