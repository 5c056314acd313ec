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
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/braces/internal/report"
	"fillmore-labs.com/braces/refactoring"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report braces style violations",
		ArgsUsage: "[PATTERN...]",
		Flags: append(optionFlags(),
			&cli.StringFlag{Name: "style", Aliases: []string{"s"}, Usage: "Braces style: always, never, when_multiline or none"},
			&cli.StringFlag{Name: "root", Aliases: []string{"r"}, Usage: "Directory the patterns are relative to", Value: "."},
			&cli.BoolFlag{Name: "fix", Usage: "Apply the suggested fixes"},
			&cli.BoolFlag{Name: "diff", Aliases: []string{"d"}, Usage: "Display a diff of the fixes instead of applying them"},
		),
		Action: check,
	}
}

func check(c *cli.Context) error {
	p, err := loadProvider(c)
	if err != nil {
		return err
	}

	root := c.String("root")
	fsys := os.DirFS(root)

	names, err := refactoring.Files(fsys, c.Args().Slice()...)
	if err != nil {
		return errors.WithHint(err, "Patterns use doublestar syntax, like **/*.cs")
	}

	diff, fix := c.Bool("diff"), c.Bool("fix")

	files, err := p.CheckFiles(c.Context, fsys, names, fix || diff)
	if err != nil {
		return err
	}

	var failed, remaining int

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Name))

		if f.Err != nil {
			failed++

			_, _ = fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", path, f.Err)

			continue
		}

		remaining += len(f.Diagnostics)

		if err := report.Print(c.App.Writer, f.Tree, f.Diagnostics); err != nil {
			return err
		}

		if !f.Changed() {
			continue
		}

		switch {
		case diff:
			text, err := report.Diff(f.Name, f.Original, f.Tree.Src)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprint(c.App.Writer, text); err != nil {
				return err
			}

			remaining += f.Applied

		case fix:
			if err := writeFile(path, f.Tree.Src); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return errors.Newf("%d of %d files could not be checked", failed, len(files))
	}

	if remaining > 0 {
		return errDiagnostics
	}

	return nil
}
