// This file is part of go-macroopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package macroopt

import (
	"fmt"
	"iter"
)

// Policy - how an option character acquires its value.
type Policy int

const (
	Flag        Policy = iota // no value
	Required                  // Scanner.Arg
	Separate                  // Scanner.NextArg
	Optional                  // Scanner.MaybeArg
	Forced                    // Scanner.ForceArg
	Passthrough               // Scanner.ArgAnyway
	Terminator                // Scanner.Disable, conventionally bound to '-'
)

func (p Policy) String() string {
	switch p {
	case Flag:
		return "flag"
	case Required:
		return "required"
	case Separate:
		return "separate"
	case Optional:
		return "optional"
	case Forced:
		return "forced"
	case Passthrough:
		return "passthrough"
	case Terminator:
		return "terminator"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// TokenKind - classification of a Token.
type TokenKind int

const (
	OptionToken TokenKind = iota
	PositionalToken
)

func (k TokenKind) String() string {
	if k == PositionalToken {
		return "positional"
	}
	return "option"
}

// Token - a classified piece of the argument list.
type Token struct {
	Kind TokenKind
	Char rune // option character, zero for positional tokens

	// Value is the positional entry or the option value.
	Value string
	// HasValue tells if an option consumed a value.
	HasValue bool

	Index int // argument list index of the entry the token came from
}

func (t Token) String() string {
	switch {
	case t.Kind == PositionalToken:
		return fmt.Sprintf("positional(%q)", t.Value)
	case t.HasValue:
		return fmt.Sprintf("-%c %q", t.Char, t.Value)
	default:
		return fmt.Sprintf("-%c", t.Char)
	}
}

// Set - option characters and their attachment policies.
type Set struct {
	policies map[rune]Policy
}

// NewSet - returns an empty Set.
func NewSet() *Set {
	return &Set{policies: make(map[rune]Policy)}
}

// Define - binds c to p.
// It will *panic* if c is already defined, the programmer has to fix this.
func (set *Set) Define(c rune, p Policy) *Set {
	if prev, ok := set.policies[c]; ok {
		panic(fmt.Sprintf("Option '%c' is already defined as %s", c, prev))
	}
	set.policies[c] = p
	return set
}

// Lookup - returns the policy bound to c.
func (set *Set) Lookup(c rune) (Policy, bool) {
	p, ok := set.policies[c]
	return p, ok
}

// Tokens - lazy sequence of tokens for args.
// On error the sequence yields a zero Token with the error and stops.
// The sequence can only be ranged over once.
func (set *Set) Tokens(args []string) iter.Seq2[Token, error] {
	s := New(args)
	return func(yield func(Token, error) bool) {
		for ; !s.Done(); s.NextEntry() {
			if !s.IsOptionEntry() {
				if !yield(Token{Kind: PositionalToken, Value: s.Entry(), Index: s.Index()}, nil) {
					s.abort()
					return
				}
				continue
			}
			for {
				c, ok := s.NextChar()
				if !ok {
					break
				}
				tok, err := set.apply(s, c)
				if err != nil {
					s.abort()
					yield(Token{}, err)
					return
				}
				tok.Index = s.EntryIndex()
				if !yield(tok, nil) {
					s.abort()
					return
				}
			}
		}
	}
}

func (set *Set) apply(s *Scanner, c rune) (Token, error) {
	p, ok := set.policies[c]
	if !ok {
		return Token{}, s.Undefined()
	}
	tok := Token{Kind: OptionToken, Char: c}
	var err error
	switch p {
	case Required:
		tok.Value, err = s.Arg()
	case Separate:
		tok.Value, err = s.NextArg()
	case Optional:
		tok.Value, _ = s.MaybeArg()
	case Forced:
		tok.Value, err = s.ForceArg()
	case Passthrough:
		s.ArgAnyway()
	case Terminator:
		s.Disable()
	}
	_, tok.HasValue = s.Value()
	return tok, err
}

// Result - collected output of a complete pass.
type Result struct {
	Options    []Token
	Positional []string
}

// Called - tells if option c was found.
func (r *Result) Called(c rune) bool {
	for _, t := range r.Options {
		if t.Char == c {
			return true
		}
	}
	return false
}

// Value - returns the value of the last occurrence of option c that has one.
func (r *Result) Value(c rune) (string, bool) {
	for i := len(r.Options) - 1; i >= 0; i-- {
		if r.Options[i].Char == c && r.Options[i].HasValue {
			return r.Options[i].Value, true
		}
	}
	return "", false
}

// Parse - ranges over Tokens and collects them.
// No partial result is returned on error.
func (set *Set) Parse(args []string) (*Result, error) {
	r := &Result{}
	for tok, err := range set.Tokens(args) {
		if err != nil {
			return nil, err
		}
		if tok.Kind == PositionalToken {
			r.Positional = append(r.Positional, tok.Value)
			continue
		}
		r.Options = append(r.Options, tok)
	}
	return r, nil
}
