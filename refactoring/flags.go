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
	"flag"

	"fillmore-labs.com/braces/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newFlagBit(&r.providers, config.AddBraces), "add", "offer adding braces")
	flags.Var(newFlagBit(&r.providers, config.RemoveBraces), "remove", "offer removing braces")
	flags.Var(newFlagBit(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newFlagBit(&r.behavior, config.Conservative), "conservative", "keep braces around any trailing if statement followed by else")
	flags.Var(newFlagBit(&r.behavior, config.WrapElseIf), "wrap-else-if", `add braces around the if statement of "else if"`)
	flags.Var(&r.style, "style", "braces style: always, never, when_multiline or none")
	flags.IntVar(&r.format.IndentSize, "indent-size", r.format.IndentSize, "number of spaces per indentation level")
	flags.BoolVar(&r.format.UseTabs, "use-tabs", r.format.UseTabs, "indent with tabs")
}
