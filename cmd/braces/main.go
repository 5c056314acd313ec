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

// Braces adds and removes braces around single-statement bodies in C# sources.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/braces/refactoring"
	"fillmore-labs.com/braces/settings"
)

// errDiagnostics signals remaining style violations, it is reported only by the exit status.
var errDiagnostics = errors.New("style violations found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args)

	stop()

	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			printError(os.Stderr, err)
		}

		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      refactoring.Name,
		Usage:     refactoring.Doc,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   settings.DefaultFile,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
				Value: "warn",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			actionsCommand(),
			applyCommand(),
			checkCommand(),
		},
	}
}

// setupLogging installs a text logger on the error output.
func setupLogging(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return errors.WithHint(errors.Wrap(err, "invalid log level"), "Use one of debug, info, warn or error")
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return nil
}

// printError writes an error with its hints.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s: %v\n", refactoring.Name, err)

	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
