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


// Package parslymatch adapts prelex matchers to the github.com/viant/parsly
// Matcher interface, so that they can be used as parsly tokens.
//
// parsly reports a match by its length and uses 0 for no match. As a
// consequence, zero-width successes (WordBoundary, EndOfLine, Lookahead,
// OptionalSpaces on non-space input...) are reported as no match, and a match
// that extends past the end of input (LineBreak at end of input) is clamped to
// the remaining input length.
package parslymatch

import (
	"github.com/db47h/prelex"
	"github.com/viant/parsly"
)

type matcher struct {
	m prelex.Matcher
}

// New returns a parsly.Matcher for m.
func New(m prelex.Matcher) parsly.Matcher {
	return &matcher{m: m}
}

// Token returns a parsly token that matches m.
func Token(code int, name string, m prelex.Matcher) *parsly.Token {
	return parsly.NewToken(code, name, New(m))
}

func (t *matcher) Match(cursor *parsly.Cursor) int {
	size := cursor.InputSize
	if size > len(cursor.Input) {
		size = len(cursor.Input)
	}
	if cursor.Pos >= size {
		return 0
	}
	end := t.m(prelex.Source(cursor.Input[:size]), prelex.Pos(cursor.Pos))
	if end == prelex.NoMatch {
		return 0
	}
	n := int(end) - cursor.Pos
	if rem := size - cursor.Pos; n > rem {
		n = rem
	}
	return n
}
