// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package macroopt - minimal single character option scanner.

It walks an argv style slice (index 0 is the program name), classifies each
entry as option bearing (starts with `-`) or positional, and hands every
option character of an option entry to caller logic.
Options can be bundled, for example `-abc`.
Caller logic decides per character whether the option takes a value and how
that value is attached.

Usage

The dispatch form mirrors a switch statement:

	var file string
	var positional []string
	err := macroopt.Scan(os.Args, func(s *macroopt.Scanner, c rune) error {
		switch c {
		case 'h':
			fmt.Println("No Help Available!")
		case 'f':
			v, err := s.Arg()
			if err != nil {
				return err
			}
			file = v
		case '-':
			s.Disable() // stop processing options when '--' is found
		default:
			return s.Undefined()
		}
		return nil
	}, func(arg string) {
		positional = append(positional, arg)
	})
	if err != nil {
		os.Exit(macroopt.Report(err))
	}

The table form yields a lazy sequence of tokens instead:

	set := macroopt.NewSet().
		Define('h', macroopt.Flag).
		Define('f', macroopt.Required).
		Define('-', macroopt.Terminator)
	for tok, err := range set.Tokens(os.Args) {
		...
	}

Attachment policies

* Arg: value is the rest of the entry, or the next entry when the rest is empty and the next entry doesn't start with `-`.
`-jfFILE`, `-j -f FILE`, `-fFILE -j` all give `FILE`. `-f-f` gives `-f`, `-f -f` is an error.

* NextArg: value is always the next entry, which must not start with `-`. The rest of the current entry is still scanned.

* MaybeArg: like Arg, but a missing value is not an error.

* ForceArg: like Arg, but the next entry is taken even when it starts with `-`.

* ArgAnyway: reserved, does nothing.

Errors

Scanning stops at the first error.
Both ErrorUnknownOption and ErrorMissingArgument are reported as *OptionError.
Its message names the offending character, for example `option 'z' is undefined`.
*/
package macroopt

import (
	"strings"
	"unicode/utf8"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/DavidGamba/go-macroopt/internal/argstream"
)

// Logger instance set to a no-op logger by default.
// Enable debug logging by setting: `Logger = log.NewLogfmtLogger(os.Stderr)`.
var Logger log.Logger = log.NewNopLogger()

// Scanner - scan state for a single forward pass over an argument list.
type Scanner struct {
	args    *argstream.Stream
	entry   string // args[at]
	at      int    // index of entry, fixed while its characters are dispatched
	next    int    // offset of the character after char
	char    rune
	enabled bool

	value    string
	hasValue bool
}

// New - starts a scan at index 1 of args.
func New(args []string) *Scanner {
	s := &Scanner{
		args:    argstream.New(args, 1),
		enabled: true,
	}
	s.reset()
	return s
}

// reset points the cursor at the first character of the current entry.
func (s *Scanner) reset() {
	s.entry, s.at = s.args.Value(), s.args.Index()
	s.next, s.char = 0, 0
	if s.entry != "" {
		s.char, s.next = utf8.DecodeRuneInString(s.entry)
	}
}

// Done - tells if every entry has been scanned.
func (s *Scanner) Done() bool {
	return s.args.Done()
}

// Index - current position in the argument list.
// It moves past any entry consumed as a value.
func (s *Scanner) Index() int {
	return s.args.Index()
}

// EntryIndex - position of the entry being scanned.
// Unlike Index it doesn't move when a following entry is consumed as a value.
func (s *Scanner) EntryIndex() int {
	return s.at
}

// Entry - the entry being scanned.
func (s *Scanner) Entry() string {
	return s.entry
}

// NextEntry - moves to the following entry and resets the cursor to its start.
func (s *Scanner) NextEntry() {
	s.args.Advance()
	s.reset()
	level.Debug(Logger).Log("msg", "next entry", "index", s.args.Index(), "entry", s.entry)
}

// IsOptionEntry - tells if the current entry carries options.
// When false the caller treats the entry as positional.
func (s *Scanner) IsOptionEntry() bool {
	return s.enabled && !s.Done() && strings.HasPrefix(s.entry, "-")
}

// Enabled - tells if option scanning is still active.
func (s *Scanner) Enabled() bool {
	return s.enabled
}

// Disable - stops option scanning, every following entry is positional.
// Usually called when handling '-', that is, on `--`.
func (s *Scanner) Disable() {
	s.enabled = false
	level.Debug(Logger).Log("msg", "option scanning disabled", "index", s.args.Index())
}

// NextChar - moves the cursor one character forward and returns it.
// It returns false once the end of the entry is reached.
// Each byte of invalid UTF-8 is returned as utf8.RuneError.
func (s *Scanner) NextChar() (rune, bool) {
	if s.next >= len(s.entry) {
		s.char = 0
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(s.entry[s.next:])
	s.next, s.char = s.next+size, c
	s.value, s.hasValue = "", false
	return c, true
}

// Char - the option character under the cursor.
func (s *Scanner) Char() rune {
	return s.char
}

// Remainder - the part of the entry after the cursor.
func (s *Scanner) Remainder() string {
	if s.next >= len(s.entry) {
		return ""
	}
	return s.entry[s.next:]
}

// Value - value captured for the current option by the last attachment policy.
func (s *Scanner) Value() (string, bool) {
	return s.value, s.hasValue
}

// Undefined - returns the error for an option character the caller doesn't handle.
func (s *Scanner) Undefined() error {
	return s.fail(ErrorUnknownOption)
}

// Arg - the option requires a value.
// The value is the rest of the entry if not empty, otherwise the next entry as long as it doesn't start with '-'.
// The rest of the entry is not scanned for options.
func (s *Scanner) Arg() (string, error) {
	if rest := s.Remainder(); rest != "" {
		s.end()
		return s.capture(rest, "inline"), nil
	}
	if v, ok := s.args.TakeIf(notOption); ok {
		return s.capture(v, "next entry"), nil
	}
	return "", s.fail(ErrorMissingArgument)
}

// NextArg - the option requires the next entry as its value, which can't start with '-'.
// The rest of the current entry is still scanned for options.
func (s *Scanner) NextArg() (string, error) {
	if v, ok := s.args.TakeIf(notOption); ok {
		return s.capture(v, "next entry"), nil
	}
	return "", s.fail(ErrorMissingArgument)
}

// MaybeArg - the option can have a value.
// Same lookup as Arg but returns false instead of failing when there is none.
// The rest of the entry is never scanned for options.
func (s *Scanner) MaybeArg() (string, bool) {
	defer s.end()
	if rest := s.Remainder(); rest != "" {
		return s.capture(rest, "inline"), true
	}
	if v, ok := s.args.TakeIf(notOption); ok {
		return s.capture(v, "next entry"), true
	}
	level.Debug(Logger).Log("msg", "no value", "option", string(s.char), "index", s.args.Index())
	return "", false
}

// ForceArg - the option requires a value and '-' prefixed values are allowed.
// The value is the rest of the entry if not empty, otherwise the next entry whatever it looks like.
func (s *Scanner) ForceArg() (string, error) {
	if rest := s.Remainder(); rest != "" {
		s.end()
		return s.capture(rest, "inline"), nil
	}
	if v, ok := s.args.TakeIf(anyEntry); ok {
		s.end()
		return s.capture(v, "next entry"), nil
	}
	return "", s.fail(ErrorMissingArgument)
}

// ArgAnyway - reserved attachment policy.
// It consumes nothing and sets no value.
func (s *Scanner) ArgAnyway() {
	level.Debug(Logger).Log("msg", "ArgAnyway is not implemented", "option", string(s.char), "index", s.args.Index())
}

// abort moves to the Done state.
func (s *Scanner) abort() {
	s.args.Seek(s.args.Len())
	s.reset()
}

// end moves the cursor to the end of the entry so the next NextChar stops dispatch.
func (s *Scanner) end() {
	s.next = len(s.entry)
}

func (s *Scanner) capture(v, from string) string {
	s.value, s.hasValue = v, true
	level.Debug(Logger).Log("msg", "value", "option", string(s.char), "from", from, "value", v, "index", s.args.Index())
	return v
}

func (s *Scanner) fail(err error) error {
	level.Debug(Logger).Log("msg", "scan aborted", "option", string(s.char), "index", s.args.Index(), "err", err)
	return &OptionError{Char: s.char, Index: s.at, Err: err}
}

func notOption(v string) bool {
	return !strings.HasPrefix(v, "-")
}

func anyEntry(string) bool {
	return true
}
