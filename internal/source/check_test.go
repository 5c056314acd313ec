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

package source_test

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"

	"fillmore-labs.com/braces/internal/config"
	"fillmore-labs.com/braces/internal/run"
	. "fillmore-labs.com/braces/internal/source"
	"fillmore-labs.com/braces/internal/testsource"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a.cs":           {Data: []byte(testsource.Wrap("while (a)\n    if (b)\n        F();\n"))},
		"sub/b.cs":       {Data: []byte(testsource.Wrap("if (a)\n{\n    F();\n}\n"))},
		"sub/broken.cs":  {Data: []byte("class C { void M() { if (a) } }")},
		"sub/readme.txt": {Data: []byte("not C#")},
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"default", nil, []string{"a.cs", "sub/b.cs", "sub/broken.cs"}},
		{"subdirectory", []string{"sub/*.cs"}, []string{"sub/b.cs", "sub/broken.cs"}},
		{"duplicates", []string{"*.cs", "**/a.cs"}, []string{"a.cs"}},
		{"no match", []string{"**/*.go"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Files(testFS(), tt.patterns...)
			if err != nil {
				t.Fatalf("Files failed: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Files() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilesInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := Files(testFS(), "[a"); !errors.Is(err, ErrPattern) {
		t.Errorf("Files() error = %v, want %v", err, ErrPattern)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	names := []string{"a.cs", "sub/b.cs", "sub/broken.cs", "missing.cs"}

	files, err := Check(t.Context(), fsys, names, run.DefaultOptions(), false)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(files) != len(names) {
		t.Fatalf("Got %d results, want %d", len(files), len(names))
	}

	for i, f := range files {
		if f.Name != names[i] {
			t.Errorf("Result %d is %s, want %s", i, f.Name, names[i])
		}
	}

	if got := len(files[0].Diagnostics); got != 2 {
		t.Errorf("Got %d diagnostics in %s, want 2", got, files[0].Name)
	}

	if got := len(files[1].Diagnostics); got != 0 {
		t.Errorf("Got %d diagnostics in %s, want 0", got, files[1].Name)
	}

	if !errors.Is(files[2].Err, run.ErrSyntax) {
		t.Errorf("Error for %s = %v, want %v", files[2].Name, files[2].Err, run.ErrSyntax)
	}

	if files[3].Err == nil {
		t.Errorf("Expected error for %s", files[3].Name)
	}
}

func TestCheckFix(t *testing.T) {
	t.Parallel()

	files, err := Check(t.Context(), testFS(), []string{"a.cs"}, run.DefaultOptions(), true)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	f := files[0]
	if f.Err != nil {
		t.Fatalf("Unexpected error: %v", f.Err)
	}

	if f.Applied != 2 || !f.Changed() {
		t.Errorf("Applied %d fixes, want 2", f.Applied)
	}

	if len(f.Diagnostics) != 0 {
		t.Errorf("Got %d remaining diagnostics, want 0", len(f.Diagnostics))
	}

	want := "while (a)\n{\n    if (b)\n    {\n        F();\n    }\n}\n"
	if got := testsource.Fragment(t, string(f.Tree.Src)); got != want {
		t.Errorf("Got:\n%s\nWant:\n%s", got, want)
	}
}

func TestCheckNever(t *testing.T) {
	t.Parallel()

	opts := run.DefaultOptions()
	opts.Style = config.StyleNever

	files, err := Check(t.Context(), testFS(), []string{"sub/b.cs"}, opts, true)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := "if (a)\n    F();\n"
	if got := testsource.Fragment(t, string(files[0].Tree.Src)); got != want {
		t.Errorf("Got:\n%s\nWant:\n%s", got, want)
	}
}
