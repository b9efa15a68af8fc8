// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package macroopt

import (
	"github.com/go-kit/log/level"
)

// OptionFunc - caller logic for a single option character.
// Return s.Undefined() for characters it doesn't handle.
// Any error aborts the scan.
type OptionFunc func(s *Scanner, c rune) error

// Scan - runs a full pass over args.
// fn is called for every option character and positional, when not nil, for every positional entry in order.
func Scan(args []string, fn OptionFunc, positional func(arg string)) error {
	s := New(args)
	for ; !s.Done(); s.NextEntry() {
		if !s.IsOptionEntry() {
			level.Debug(Logger).Log("msg", "positional", "index", s.Index(), "entry", s.Entry())
			if positional != nil {
				positional(s.Entry())
			}
			continue
		}
		for {
			c, ok := s.NextChar()
			if !ok {
				break
			}
			if err := fn(s, c); err != nil {
				return err
			}
		}
	}
	return nil
}
