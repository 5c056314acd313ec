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

// Package source discovers C# files and checks them in parallel.
package source

import (
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

// DefaultPattern matches all C# files.
const DefaultPattern = "**/*.cs"

// ErrPattern is returned for malformed file patterns.
var ErrPattern = errors.New("invalid pattern")

// Files returns the sorted names of all files in fsys matching any of the patterns.
// Without patterns, [DefaultPattern] is used.
func Files(fsys fs.FS, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	var names []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Wrapf(ErrPattern, "%q", pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "can't match %q", pattern)
		}

		names = append(names, matches...)
	}

	slices.Sort(names)

	return slices.Compact(names), nil
}
