// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package macroopt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-kit/log"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Points the package Logger to a buffer and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := setupLogging(t)
	return func() {
		if buf.Len() > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

func setupLogging(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := Logger
	Logger = log.NewLogfmtLogger(buf)
	t.Cleanup(func() { Logger = prev })
	return buf
}

// recorder - caller logic for Scan that records what it sees.
// Options listed in flags take no value, options in policies use the given attachment policy.
type recorder struct {
	flags    string
	policies map[rune]func(s *Scanner) (string, bool, error)

	seen       []Token
	positional []string
}

func (r *recorder) option(s *Scanner, c rune) error {
	index := s.EntryIndex()
	if fn, ok := r.policies[c]; ok {
		v, has, err := fn(s)
		if err != nil {
			return err
		}
		r.seen = append(r.seen, Token{Kind: OptionToken, Char: c, Value: v, HasValue: has, Index: index})
		return nil
	}
	for _, f := range r.flags {
		if f == c {
			r.seen = append(r.seen, Token{Kind: OptionToken, Char: c, Index: index})
			return nil
		}
	}
	if c == '-' {
		s.Disable()
		return nil
	}
	return s.Undefined()
}

func (r *recorder) addPositional(arg string) {
	r.positional = append(r.positional, arg)
}

func argPolicy(s *Scanner) (string, bool, error) {
	v, err := s.Arg()
	return v, err == nil, err
}

func nextArgPolicy(s *Scanner) (string, bool, error) {
	v, err := s.NextArg()
	return v, err == nil, err
}

func maybeArgPolicy(s *Scanner) (string, bool, error) {
	v, ok := s.MaybeArg()
	return v, ok, nil
}

func forceArgPolicy(s *Scanner) (string, bool, error) {
	v, err := s.ForceArg()
	return v, err == nil, err
}

func argAnywayPolicy(s *Scanner) (string, bool, error) {
	s.ArgAnyway()
	v, ok := s.Value()
	return v, ok, nil
}
