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
	"strconv"
	"strings"

	"fillmore-labs.com/braces/internal/config"
)

// flagBit is a boolean [flag.Value] backed by a single bit of a [config.BitMask].
type flagBit[T config.Flag] struct {
	mask *config.BitMask[T]
	bit  T
}

func newFlagBit[T config.Flag](mask *config.BitMask[T], bit T) flagBit[T] {
	return flagBit[T]{mask: mask, bit: bit}
}

// Set implements [flag.Value]. Besides the forms of [strconv.ParseBool] it accepts on and off.
func (f flagBit[T]) Set(s string) error {
	var value bool
	switch {
	case strings.EqualFold(s, "on"):
		value = true

	case strings.EqualFold(s, "off"):
		value = false

	default:
		var err error
		if value, err = strconv.ParseBool(s); err != nil {
			return err
		}
	}

	f.mask.Set(f.bit, value)

	return nil
}

// String implements [flag.Value]. It is called on the zero value for usage messages.
func (f flagBit[T]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f flagBit[T]) Get() any { return f.enabled() }

// IsBoolFlag allows -name without a value.
func (f flagBit[T]) IsBoolFlag() bool { return true }

func (f flagBit[T]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.bit)
}
