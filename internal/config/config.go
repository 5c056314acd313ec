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

// Package config holds the flags and settings shared by the braces engine.
package config

import "strings"

// ProviderFlags represents specific refactoring providers.
type ProviderFlags uint8

const (
	// AddBraces enables the provider wrapping bare bodies into blocks.
	AddBraces ProviderFlags = 1 << iota

	// RemoveBraces enables the provider unwrapping single-statement blocks.
	RemoveBraces
)

// Providers is the set of enabled providers.
type Providers = BitMask[ProviderFlags]

// DefaultProviders returns the providers enabled by default.
func DefaultProviders() Providers {
	return NewBitMask(AddBraces, RemoveBraces)
}

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether generated files are checked.
	IncludeGenerated BehaviorFlags = 1 << iota

	// Conservative blocks removing braces around any trailing if statement when an outer else follows,
	// not only around if statements without else.
	Conservative

	// WrapElseIf permits adding braces around the if statement of an "else if".
	WrapElseIf
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(Conservative)
}

// Format controls the layout of inserted braces.
type Format struct {
	// IndentSize is the number of spaces for one indentation level.
	IndentSize int

	// UseTabs indents with a tab instead of spaces.
	UseTabs bool
}

// DefaultFormat returns the default layout: four spaces.
func DefaultFormat() Format {
	return Format{IndentSize: 4}
}

// Unit returns the text of one indentation level.
func (f Format) Unit() string {
	if f.UseTabs {
		return "\t"
	}

	size := f.IndentSize
	if size <= 0 {
		size = 4
	}

	return strings.Repeat(" ", size)
}
