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

package config_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/braces/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(AddBraces)

	if !b.Enabled(AddBraces) || b.Enabled(RemoveBraces) {
		t.Errorf("NewBitMask(AddBraces) = %v", b)
	}

	b.Set(RemoveBraces, true)
	b.Set(AddBraces, false)

	if b.Enabled(AddBraces) || !b.Enabled(RemoveBraces) {
		t.Errorf("After Set: %v", b)
	}

	b.Disable(RemoveBraces)

	if !b.Empty() {
		t.Errorf("After Disable: %v, want empty", b)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Style
		err  error
	}{
		{"always", StyleAlways, nil},
		{"true", StyleAlways, nil},
		{"never", StyleNever, nil},
		{"when_multiline", StyleWhenMultiline, nil},
		{"none", StyleNone, nil},
		{"sometimes", StyleNone, ErrUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStyle(tt.name)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseStyle(%q) error = %v, want %v", tt.name, err, tt.err)
			}

			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %s, want %s", tt.name, got, tt.want)
			}

			if err == nil && tt.name == got.String() {
				var s Style
				if err := s.Set(got.String()); err != nil || s != got {
					t.Errorf("Set(%q) = %s, %v", got, s, err)
				}
			}
		})
	}
}

func TestFormatUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"Default", DefaultFormat(), "    "},
		{"Two", Format{IndentSize: 2}, "  "},
		{"Tabs", Format{IndentSize: 4, UseTabs: true}, "\t"},
		{"Zero", Format{}, "    "},
		{"Wide", Format{IndentSize: 20}, strings.Repeat(" ", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.format.Unit(); got != tt.want {
				t.Errorf("Unit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleText(t *testing.T) {
	t.Parallel()

	text, err := StyleWhenMultiline.MarshalText()
	if err != nil || string(text) != "when_multiline" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	var s Style
	if err := s.UnmarshalText([]byte("never")); err != nil || s != StyleNever {
		t.Errorf("UnmarshalText() = %s, %v", s, err)
	}

	if _, err := Style(42).MarshalText(); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("MarshalText() error = %v, want %v", err, ErrUnknownStyle)
	}
}
