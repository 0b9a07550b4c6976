// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.


// Package state provides state functions for lexing stylesheet tokens:
// whitespace, names, variables, hashes, numbers, quoted strings and comments.
//
// State functions in this package expect the current position to be at the
// first byte of the lexed entity. They never consume input on behalf of the
// next token. For example:
//
//	s.StartToken(s.Pos())
//	switch s.Peek() {
//	case '"', '\'':
//		// do not consume the quote here
//		return state.QuotedString(tokString)
//	}
//
// All functions are in fact constructors that take at least a token type as
// argument and return closures. Note that because some of these constructors
// pre-allocate buffers, using the returned state functions concurrently is not
// safe. See the examples for correct usage.
//
// Everything here is expressed with prelex matchers; the matchers exported by
// this package (Name, Escape, ...) can be reused by custom state functions.
//
package state

import (
	"strconv"
	"unicode/utf8"

	"github.com/db47h/prelex"
)

const (
	errUnterminatedString  = "unterminated string"
	errUnterminatedComment = "unterminated comment"
	errInvalidHexColor     = "invalid hex color %q"
)

var (
	backslash = prelex.Exactly('\\')

	// Blank matches a single whitespace byte that does not end a line.
	Blank = prelex.Sequence(prelex.Lookahead(prelex.Space), prelex.Negate(prelex.EndOfLine))

	// HexEscape matches a backslash, 1 to 6 hex digits and an optional single
	// whitespace (\r\n counts as one).
	HexEscape = prelex.Sequence(backslash, prelex.Between(prelex.XDigit, 1, 6),
		prelex.Optional(prelex.Alternatives(prelex.Literal("\r\n"), prelex.Space)))

	// Escape matches any CSS escape sequence that may appear in a name.
	Escape = prelex.Alternatives(HexEscape, prelex.Sequence(backslash, prelex.Negate(prelex.EndOfLine)))

	// Continuation matches an escaped line break inside a quoted string.
	Continuation = prelex.Sequence(backslash,
		prelex.Lookahead(prelex.Alternatives(prelex.Exactly('\n'), prelex.Exactly('\r'))),
		prelex.LineBreak)

	// NameStart matches the first byte (or escape) of a name.
	NameStart = prelex.Alternatives(prelex.Alpha, prelex.Exactly('_'), prelex.Unicode, Escape)

	// NameChar matches a byte (or escape) that continues a name.
	NameChar = prelex.Alternatives(prelex.Character, prelex.Exactly('_'), Escape)

	// Name matches a name: an optional hyphen followed by NameStart and any
	// number of NameChar, or a custom property name starting with "--". A
	// name always ends on a word boundary.
	Name = prelex.Sequence(
		prelex.Alternatives(
			prelex.Sequence(prelex.Literal("--"), prelex.ZeroOrMore(NameChar)),
			prelex.Sequence(prelex.Optional(prelex.Exactly('-')), NameStart, prelex.ZeroOrMore(NameChar)),
		),
		prelex.WordBoundary)

	// LineCommentText matches a // comment up to, but excluding, the end of
	// line.
	LineCommentText = prelex.Sequence(prelex.Literal("//"), prelex.ZeroOrMore(prelex.Negate(prelex.EndOfLine)))
)

// Spaces returns a StateFn that lexes a run of spaces that does not include
// line breaks.
//
func Spaces(t prelex.Token) prelex.StateFn {
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if s.Match(prelex.OneOrMore(Blank)) {
			s.Emit(pos, t, nil)
		}
		return nil
	}
}

// Newline returns a StateFn that lexes a single line break.
//
func Newline(t prelex.Token) prelex.StateFn {
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if s.Peek() != 0 && s.Match(prelex.LineBreak) {
			s.Emit(pos, t, nil)
		}
		return nil
	}
}

// Identifier returns a StateFn that lexes a name. The token value is the
// name's source text, escapes included.
//
func Identifier(t prelex.Token) prelex.StateFn {
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if s.Match(Name) {
			s.Emit(pos, t, string(s.Source()[pos:s.Pos()]))
		}
		return nil
	}
}

// Variable returns a StateFn that lexes a Sass variable. The token value is
// the variable name without the leading '$'.
//
func Variable(t prelex.Token) prelex.StateFn {
	dollarName := prelex.Sequence(prelex.Exactly('$'), Name)
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if s.Match(dollarName) {
			s.Emit(pos, t, string(s.Source()[pos+1:s.Pos()]))
		}
		return nil
	}
}

// Hash returns a StateFn that lexes a '#' followed by name characters. When
// these are exactly 3, 4, 6 or 8 hex digits, a token of type tColor is
// emitted, otherwise a token of type tHash. The value is the text following
// the '#'.
//
// Names that start like a color but are not one (e.g. "#abcde") are still
// valid hashes, so the only error reported is for a color-like hash that
// starts with a digit, which cannot be a name either.
//
func Hash(tColor, tHash prelex.Token) prelex.StateFn {
	hash := prelex.Sequence(prelex.Exactly('#'), prelex.OneOrMore(NameChar))
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if !s.Match(hash) {
			return nil
		}
		v := string(s.Source()[pos+1 : s.Pos()])
		src := prelex.Source(v)
		switch n := prelex.ZeroOrMore(prelex.XDigit)(src, 0); {
		case int(n) == len(v) && (n == 3 || n == 4 || n == 6 || n == 8):
			s.Emit(pos, tColor, v)
		case prelex.IsDigit(src.At(0)) && NameStart(src, 0) == prelex.NoMatch:
			s.Errorf(pos, errInvalidHexColor, "#"+v)
		default:
			s.Emit(pos, tHash, v)
		}
		return nil
	}
}

// QuotedString returns a StateFn that lexes a single or double quoted string.
// The token value is the unescaped string.
//
// Escapes follow CSS rules: a backslash followed by 1 to 6 hex digits and an
// optional whitespace denotes a code point; a backslash followed by a line
// break is removed; a backslash followed by any other byte yields that byte.
// Invalid code points (zero, surrogates or above U+10FFFF) are replaced with
// U+FFFD.
//
// The string must be terminated before the end of line.
//
func QuotedString(t prelex.Token) prelex.StateFn {
	b := make([]byte, 0, 64)
	return func(s *prelex.State) prelex.StateFn {
		b = b[:0]
		pos := s.Pos()
		quote := s.Next()
		for {
			c := s.Peek()
			switch {
			case c == quote:
				s.Next()
				s.Emit(pos, t, string(b))
				return nil
			case s.Test(prelex.EndOfLine) != prelex.NoMatch:
				s.Errorf(pos, errUnterminatedString)
				return nil
			case c != '\\':
				b = append(b, s.Next())
			default:
				start := s.Pos()
				switch {
				case s.Match(HexEscape):
					b = utf8.AppendRune(b, decodeHex(s.Source(), start+1))
				case s.Match(Continuation):
				case s.Match(Escape):
					b = append(b, s.Source()[start+1])
				default:
					// lone backslash at end of input
					s.Next()
				}
			}
		}
	}
}

func decodeHex(src prelex.Source, p prelex.Pos) rune {
	e := prelex.Between(prelex.XDigit, 1, 6)(src, p)
	v, err := strconv.ParseUint(string(src[p:e]), 16, 32)
	r := rune(v)
	if err != nil || r == 0 || !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	return r
}

// BlockComment returns a StateFn that lexes a /* */ comment. The token value
// is the comment text including delimiters.
//
func BlockComment(t prelex.Token) prelex.StateFn {
	start, end := prelex.Literal("/*"), prelex.Literal("*/")
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if !s.Match(start) {
			return nil
		}
		for !s.Match(end) {
			if s.EOF() {
				s.Errorf(pos, errUnterminatedComment)
				return nil
			}
			s.Next()
		}
		s.Emit(pos, t, string(s.Source()[pos:s.Pos()]))
		return nil
	}
}

// LineComment returns a StateFn that lexes a // comment. The token value is
// the comment text, excluding the line break.
//
func LineComment(t prelex.Token) prelex.StateFn {
	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		if s.Match(LineCommentText) {
			s.Emit(pos, t, string(s.Source()[pos:s.Pos()]))
		}
		return nil
	}
}
