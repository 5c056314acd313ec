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

package config

import "github.com/cockroachdb/errors"

// Style is the preferred use of braces checked for whole files.
type Style uint8

//go:generate go tool stringer -type Style -linecomment
const (
	// StyleNone reports nothing.
	StyleNone Style = iota // none

	// StyleAlways requires braces around every body.
	StyleAlways // always

	// StyleNever requires removing braces around single statements where possible.
	StyleNever // never

	// StyleWhenMultiline requires braces around bodies spanning multiple lines.
	StyleWhenMultiline // when_multiline
)

// ErrUnknownStyle is returned by [ParseStyle] for unknown style names.
var ErrUnknownStyle = errors.New("unknown style")

// ParseStyle returns the [Style] with the given name.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "none", "false":
		return StyleNone, nil

	case "always", "true":
		return StyleAlways, nil

	case "never":
		return StyleNever, nil

	case "when_multiline", "when-multiline":
		return StyleWhenMultiline, nil

	default:
		return StyleNone, errors.Wrapf(ErrUnknownStyle, "%q", name)
	}
}

// Set implements [flag.Value].
func (s *Style) Set(name string) error {
	style, err := ParseStyle(name)
	if err != nil {
		return err
	}

	*s = style

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Style) MarshalText() ([]byte, error) {
	if s > StyleWhenMultiline {
		return nil, errors.Wrapf(ErrUnknownStyle, "%d", uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Style) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
