// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package macroopt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DavidGamba/go-macroopt/text"
)

// ExitStatus - process status for any scan error.
const ExitStatus = 1

// ErrorUnknownOption - Indicates an option character that the caller logic doesn't handle.
var ErrorUnknownOption = errors.New("unknown option")

// ErrorMissingArgument - Indicates an attachment policy found no value.
var ErrorMissingArgument = errors.New("missing argument")

// Writer - io.Writer that Report writes diagnostics to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// OptionError - a fatal scan error tied to the option character that caused it.
type OptionError struct {
	Char  rune
	Index int // argument list index of the entry holding Char
	Err   error
}

func (e *OptionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrorUnknownOption):
		return fmt.Sprintf(text.ErrorUndefinedOption, e.Char)
	case errors.Is(e.Err, ErrorMissingArgument):
		return fmt.Sprintf(text.ErrorNeedsArgument, e.Char)
	}
	return fmt.Sprintf("option '%c': %s", e.Char, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// Report - writes the diagnostic for err to Writer and returns the process status to exit with.
// A nil err writes nothing and returns 0.
func Report(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(Writer, err)
	return ExitStatus
}
