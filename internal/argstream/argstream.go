// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argstream - forward only cursor over an argument list with one entry of lookahead.
package argstream

// Stream - argument list and the position of the entry being scanned.
type Stream struct {
	args []string
	idx  int
}

// New - builds a Stream positioned at start.
// start is clamped to the list size.
func New(args []string, start int) *Stream {
	s := &Stream{args: args}
	s.Seek(start)
	return s
}

// Len - returns the number of entries, program name included.
func (s *Stream) Len() int {
	return len(s.args)
}

// Index - returns the current position.
func (s *Stream) Index() int {
	return s.idx
}

// Seek - moves to position i, never past the end of the list.
func (s *Stream) Seek(i int) {
	switch {
	case i < 0:
		s.idx = 0
	case i > len(s.args):
		s.idx = len(s.args)
	default:
		s.idx = i
	}
}

// Advance - moves one entry forward, never past the end of the list.
func (s *Stream) Advance() {
	if s.idx < len(s.args) {
		s.idx++
	}
}

// Done - tells if every entry has been read.
func (s *Stream) Done() bool {
	return s.idx >= len(s.args)
}

// Value - returns the entry at the current position or an empty string once the list is exhausted.
func (s *Stream) Value() string {
	if s.idx >= len(s.args) {
		return ""
	}
	return s.args[s.idx]
}

// Peek - returns the entry after the current one and indicates whether it exists.
func (s *Stream) Peek() (string, bool) {
	if s.idx+1 >= len(s.args) {
		return "", false
	}
	return s.args[s.idx+1], true
}

// TakeIf - moves to the next entry and returns it when accept approves it.
// The position is left alone otherwise.
func (s *Stream) TakeIf(accept func(string) bool) (string, bool) {
	next, ok := s.Peek()
	if !ok || !accept(next) {
		return "", false
	}
	s.idx++
	return next, true
}
