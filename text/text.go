// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorUndefinedOption holds the text for an option character the caller doesn't handle.
// It has a rune placeholder '%c' for the option.
var ErrorUndefinedOption = "option '%c' is undefined"

// ErrorNeedsArgument holds the text for an option that found no value.
// It has a rune placeholder '%c' for the option.
var ErrorNeedsArgument = "option '%c' needs argument"
