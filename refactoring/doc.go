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

// Package refactoring implements the braces refactorings for C# sources.
//
// # Overview
//
// Braces adds or removes the block delimiters around the single-statement body of
// if, while, for, foreach, do, lock, using and fixed statements and else clauses.
// It offers the rewrites available at a cursor position and checks whole files
// against a braces style.
//
// # Example
//
// Adding braces, with the cursor on the throw statement:
//
//	if (arg == null)
//	    throw new ArgumentNullException(nameof(arg));
//
// becomes:
//
//	if (arg == null)
//	{
//	    throw new ArgumentNullException(nameof(arg));
//	}
//
// Removing braces is the inverse. It is not offered when the block holds more than
// one statement, a declaration, or an if statement that would capture a following else:
//
//	if (a)
//	{
//	    if (b) F();
//	}
//	else
//	    G();
//
// # Styles
//
// The style check reports and fixes violations of one of the styles:
//
//   - always: every body is a block, except the if statement of an "else if"
//   - never: single-statement blocks are unwrapped where safe
//   - when_multiline: bodies of constructs spanning multiple lines are blocks
package refactoring
