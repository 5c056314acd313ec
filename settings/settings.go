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

/*
Package settings reads braces configuration files.

# Usage

Add a file `.braces.toml` to your project root:

	style = "when_multiline"
	conservative = true
	indent-size = 4

Unset keys keep their defaults. Unknown keys are rejected.
*/
package settings

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"fillmore-labs.com/braces/refactoring"
)

// DefaultFile is the name of the configuration file looked up in the working directory.
const DefaultFile = ".braces.toml"

// ErrInvalid is returned for malformed configuration files.
var ErrInvalid = errors.New("invalid configuration")

// Settings represents the configuration options of a braces [refactoring.Provider].
type Settings struct {
	// Add enables adding braces.
	Add *bool `toml:"add,omitempty"`
	// Remove enables removing braces.
	Remove *bool `toml:"remove,omitempty"`
	// Generated enables checking generated files.
	Generated *bool `toml:"generated,omitempty"`
	// Conservative keeps braces around any trailing if statement followed by an else.
	Conservative *bool `toml:"conservative,omitempty"`
	// WrapElseIf permits adding braces around the if statement of an "else if".
	WrapElseIf *bool `toml:"wrap-else-if,omitempty"`
	// Style is the braces style checked for whole files.
	Style *refactoring.Style `toml:"style,omitempty"`
	// IndentSize is the number of spaces of one indentation level.
	IndentSize *int `toml:"indent-size,omitempty"`
	// UseTabs indents with tabs.
	UseTabs *bool `toml:"use-tabs,omitempty"`
}

// Options converts [Settings] into a list of [refactoring.Option] for the braces provider.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []refactoring.Option {
	var opts []refactoring.Option

	opts = appendOption(opts, s.Add, refactoring.WithAddBraces)
	opts = appendOption(opts, s.Remove, refactoring.WithRemoveBraces)
	opts = appendOption(opts, s.Generated, refactoring.WithGenerated)
	opts = appendOption(opts, s.Conservative, refactoring.WithConservative)
	opts = appendOption(opts, s.WrapElseIf, refactoring.WithWrapElseIf)
	opts = appendOption(opts, s.Style, refactoring.WithStyle)
	opts = appendOption(opts, s.IndentSize, refactoring.WithIndentSize)
	opts = appendOption(opts, s.UseTabs, refactoring.WithUseTabs)

	return opts
}

// appendOption appends a non-nil setting to a [refactoring.Option] list.
func appendOption[T any](opts []refactoring.Option, value *T, constructor func(T) refactoring.Option) []refactoring.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Decode parses TOML settings, rejecting unknown keys.
func Decode(data []byte) (Settings, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Settings
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Settings{}, errors.Wrap(ErrInvalid, strict.String())
		}

		return Settings{}, errors.Mark(errors.Wrap(err, "can't decode settings"), ErrInvalid)
	}

	return s, nil
}

// Load reads settings from a file.
// A missing file yields empty settings unless required.
func Load(path string, required bool) (Settings, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:

	case errors.Is(err, fs.ErrNotExist) && !required:
		return Settings{}, nil

	default:
		return Settings{}, errors.Wrapf(err, "can't read settings")
	}

	s, err := Decode(data)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "%s", path)
	}

	return s, nil
}
