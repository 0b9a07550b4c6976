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


/*
Package prelex provides locale independent character classification and
matcher combinators: the lexical foundation of a hand-written stylesheet
lexer. It also provides a small state-function lexer driver built on top of
them.

Classifiers

Classifiers such as IsAlpha, IsSpace or IsCharacter test a single byte using
plain range arithmetic. They never consult the unicode package or any locale,
so they behave the same on every platform and are cheap enough to sit on the
hot path of a lexer. Non-ASCII bytes are not decoded: IsUnicode simply reports
bytes above 127, and IsCharacter accepts them as part of a name.

Matchers

A Matcher is a function from a position in a Source to either the position
just past a match, or NoMatch:

	type Matcher func(s Source, p Pos) Pos

Positions outside the source read as NUL, which matchers treat as end of
input. Matchers hold no state and never modify the source: a caller that needs
to backtrack saves a position and tries again from there.

Single byte matchers (Space, Alpha, Digit, ...) consume one byte of the
corresponding class. Combinators build new matchers from existing ones:

	hex := prelex.OneOrMore(prelex.XDigit)
	name := prelex.Sequence(prelex.Alpha, prelex.ZeroOrMore(prelex.Character))

Note that Negate consumes one byte when its argument does not match; it is not
a zero-width assertion. WordBoundary, EndOfLine and Lookahead are.

Common composite matchers are provided as plain functions (Spaces, Digits,
OptionalSpaces, LineBreak, ...) that do not allocate.

Lexer

The Lexer drives state functions over a File, in the style of
https://golang.org/src/text/template/parse/lex.go. A StateFn applies matchers
with State.Match, emits tokens with State.Emit and returns the next StateFn,
or nil to go back to the initial state. Emitted items are queued in a FIFO
and returned by Lexer.Lex.

The state sub-package provides state functions for common stylesheet tokens.

Concurrency

Classifiers and matchers are safe for concurrent use. A Lexer, and the state
functions returned by the state package, are not.
*/
package prelex
