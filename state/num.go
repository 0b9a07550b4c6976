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


package state

import (
	"github.com/db47h/prelex"
)

var (
	// Fraction matches a decimal separator followed by digits.
	Fraction = prelex.Sequence(prelex.Punct, prelex.Digits)

	// Exponent matches an exponent like e3, E+3 or e-3.
	Exponent = prelex.Sequence(
		prelex.Alternatives(prelex.Exactly('e'), prelex.Exactly('E')),
		prelex.Optional(prelex.Alternatives(prelex.Exactly('+'), prelex.Exactly('-'))),
		prelex.Digits)
)

// A numberLexer lexes numbers.
//
type numberLexer struct {
	tokInt   prelex.Token // token type for integers
	tokFloat prelex.Token // token type for floats
	float    bool
}

// Number returns a prelex.StateFn that lexes numbers: digits with an optional
// fractional part and an optional exponent, or a fractional part alone (".5").
// Signs are not part of the number and units (as in "12px") are left for the
// next token.
//
// tokInt is the token type returned for integers.
//
// tokFloat is the token type returned for numbers with a fractional part or
// an exponent.
//
// The token value is the number's source text. The token position is the one
// set by State.StartToken, which must be the current position when the
// StateFn is entered.
//
// The return value from Number is not safe to use concurrently.
//
// The StateFn will panic on invalid input. i.e. callers must make sure that
// the input starts with either a digit or a decimal separator followed by a
// digit:
//
//	s.StartToken(s.Pos())
//	switch {
//	case s.Test(prelex.Digit) != prelex.NoMatch,
//		s.Test(state.Fraction) != prelex.NoMatch:
//		return state.Number(tokInt, tokFloat)
//	default:
//		// ...
//	}
//
func Number(tokInt, tokFloat prelex.Token) prelex.StateFn {
	l := &numberLexer{
		tokInt:   tokInt,
		tokFloat: tokFloat,
	}
	return l.stateNumber
}

// stateNumber is the main entry point for numbers.
//
func (l *numberLexer) stateNumber(s *prelex.State) prelex.StateFn {
	l.float = false
	switch {
	case s.Match(prelex.Digits):
		return l.stateFractional
	case s.Test(Fraction) != prelex.NoMatch:
		return l.stateFractional
	}
	panic("not a number")
}

func (l *numberLexer) stateFractional(s *prelex.State) prelex.StateFn {
	if s.Match(Fraction) {
		l.float = true
	}
	return l.stateExponent
}

func (l *numberLexer) stateExponent(s *prelex.State) prelex.StateFn {
	if s.Match(Exponent) {
		l.float = true
	}
	return l.stateEmit
}

func (l *numberLexer) stateEmit(s *prelex.State) prelex.StateFn {
	t := l.tokInt
	if l.float {
		t = l.tokFloat
	}
	s.Emit(s.TokenPos(), t, string(s.Text()))
	return nil
}
