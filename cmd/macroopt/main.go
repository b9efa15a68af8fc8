// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// macroopt - echoes its positional arguments, first in reverse and then in the order given.
//
//	macroopt [-h] [-v] [-f FILE]... [--] [args...]
//
// Set MACROOPT_DEBUG=1 to log scanner decisions to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"

	"github.com/DavidGamba/go-macroopt"
)

func main() {
	defer exitwithstatus.Handler()

	if os.Getenv("MACROOPT_DEBUG") != "" {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		macroopt.Logger = level.NewFilter(logger, level.AllowDebug())
	}

	if status := program(os.Args, os.Stdout, os.Stderr); status != 0 {
		exitwithstatus.Exit(status)
	}
}

// diagnosticColor - red when w is a terminal, plain otherwise.
// color.NoColor only looks at stdout, so stderr is checked here.
func diagnosticColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.DisableColor()
	}
	return c
}

func program(args []string, stdout, stderr io.Writer) int {
	var positional []string
	err := macroopt.Scan(args, func(s *macroopt.Scanner, c rune) error {
		switch c {
		case 'h':
			fmt.Fprintln(stdout, "No Help Available!")
		case 'v':
			fmt.Fprintln(stdout, "Version 1.0")
		case 'f':
			file, err := s.Arg()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, file)
		case '-':
			s.Disable()
		default:
			return s.Undefined()
		}
		return nil
	}, func(arg string) {
		positional = append(positional, arg)
	})
	if err != nil {
		fmt.Fprintln(stderr, diagnosticColor(stderr).Sprint(err))
		return macroopt.ExitStatus
	}

	for i := len(positional) - 1; i >= 0; i-- {
		fmt.Fprintln(stdout, positional[i])
	}
	for _, arg := range positional {
		fmt.Fprintln(stdout, arg)
	}
	return 0
}
