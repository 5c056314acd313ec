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
	"log/slog"

	"fillmore-labs.com/braces/internal/config"
)

// Option configures specific behavior of a [New] braces provider.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAddBraces is an [Option] to configure whether adding braces is offered.
func WithAddBraces(add bool) Option { return addOption{add: add} }

type addOption struct{ add bool }

func (o addOption) apply(r *runOptions) {
	r.providers.Set(config.AddBraces, o.add)
}

func (o addOption) LogAttr() slog.Attr {
	return slog.Bool("add", o.add)
}

// WithRemoveBraces is an [Option] to configure whether removing braces is offered.
func WithRemoveBraces(remove bool) Option { return removeOption{remove: remove} }

type removeOption struct{ remove bool }

func (o removeOption) apply(r *runOptions) {
	r.providers.Set(config.RemoveBraces, o.remove)
}

func (o removeOption) LogAttr() slog.Attr {
	return slog.Bool("remove", o.remove)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithConservative is an [Option] to keep braces around any trailing if statement followed by an else.
func WithConservative(conservative bool) Option {
	return conservativeOption{conservative: conservative}
}

type conservativeOption struct{ conservative bool }

func (o conservativeOption) apply(r *runOptions) {
	r.behavior.Set(config.Conservative, o.conservative)
}

func (o conservativeOption) LogAttr() slog.Attr {
	return slog.Bool("conservative", o.conservative)
}

// WithWrapElseIf is an [Option] to permit adding braces around the if statement of an "else if".
func WithWrapElseIf(wrap bool) Option { return wrapElseIfOption{wrap: wrap} }

type wrapElseIfOption struct{ wrap bool }

func (o wrapElseIfOption) apply(r *runOptions) {
	r.behavior.Set(config.WrapElseIf, o.wrap)
}

func (o wrapElseIfOption) LogAttr() slog.Attr {
	return slog.Bool("wrap-else-if", o.wrap)
}

// WithStyle is an [Option] to configure the braces style checked for whole files.
func WithStyle(style config.Style) Option { return styleOption{style: style} }

type styleOption struct{ style config.Style }

func (o styleOption) apply(r *runOptions) {
	r.style = o.style
}

func (o styleOption) LogAttr() slog.Attr {
	return slog.String("style", o.style.String())
}

// WithIndentSize is an [Option] to configure the number of spaces of one indentation level.
func WithIndentSize(size int) Option { return indentSizeOption{size: size} }

type indentSizeOption struct{ size int }

func (o indentSizeOption) apply(r *runOptions) {
	r.format.IndentSize = o.size
}

func (o indentSizeOption) LogAttr() slog.Attr {
	return slog.Int("indent-size", o.size)
}

// WithUseTabs is an [Option] to configure indentation with tabs.
func WithUseTabs(tabs bool) Option { return useTabsOption{tabs: tabs} }

type useTabsOption struct{ tabs bool }

func (o useTabsOption) apply(r *runOptions) {
	r.format.UseTabs = o.tabs
}

func (o useTabsOption) LogAttr() slog.Attr {
	return slog.Bool("use-tabs", o.tabs)
}
