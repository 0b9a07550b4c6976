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


package prelex

// Source is a read-only input buffer. Positions outside the buffer read as
// NUL, which matchers treat as end of input; callers may or may not include an
// explicit NUL terminator.
//
type Source []byte

// At returns the byte at position p, or 0 if p is out of range.
//
func (s Source) At(p Pos) byte {
	if uint(p) < uint(len(s)) {
		return s[p]
	}
	return 0
}

// A Matcher checks whether the input at position p matches some pattern.
// On success it returns the position just past the match, which is never less
// than p. On failure it returns NoMatch.
//
// Matchers are pure functions: they hold no state and never modify s, so a
// caller backtracks by simply trying again from a saved position.
//
type Matcher func(s Source, p Pos) Pos

// Class returns a Matcher that consumes a single byte for which c returns
// true.
//
func Class(c Classifier) Matcher {
	return func(s Source, p Pos) Pos {
		if c(s.At(p)) {
			return p + 1
		}
		return NoMatch
	}
}

// Space matches a single whitespace byte.
//
func Space(s Source, p Pos) Pos {
	if IsSpace(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Alpha matches a single ASCII letter.
//
func Alpha(s Source, p Pos) Pos {
	if IsAlpha(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Unicode matches a single non-ASCII byte.
//
func Unicode(s Source, p Pos) Pos {
	if IsUnicode(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Digit matches a single decimal digit.
//
func Digit(s Source, p Pos) Pos {
	if IsDigit(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// XDigit matches a single hexadecimal digit.
//
func XDigit(s Source, p Pos) Pos {
	if IsXDigit(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Alnum matches a single ASCII letter or digit.
//
func Alnum(s Source, p Pos) Pos {
	if IsAlnum(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Punct matches a single '.'.
//
func Punct(s Source, p Pos) Pos {
	if IsPunct(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Character matches a single name character (see IsCharacter).
//
func Character(s Source, p Pos) Pos {
	if IsCharacter(s.At(p)) {
		return p + 1
	}
	return NoMatch
}

// Spaces matches one or more whitespace bytes.
//
func Spaces(s Source, p Pos) Pos { return oneOrMore(Space, s, p) }

// Digits matches one or more decimal digits.
//
func Digits(s Source, p Pos) Pos { return oneOrMore(Digit, s, p) }

// NoSpaces consumes a single byte that is not whitespace.
//
func NoSpaces(s Source, p Pos) Pos { return negate(Space, s, p) }

// OptionalSpaces consumes the longest, possibly empty, run of whitespace. It
// never fails.
//
func OptionalSpaces(s Source, p Pos) Pos { return zeroOrMore(Space, s, p) }

// AnyChar consumes any byte. At end of input it succeeds without advancing.
//
func AnyChar(s Source, p Pos) Pos {
	if s.At(p) != 0 {
		return p + 1
	}
	return p
}

// WordBoundary is a zero-width assertion that succeeds when the byte at p
// cannot continue a name.
//
func WordBoundary(s Source, p Pos) Pos {
	if IsCharacter(s.At(p)) {
		return NoMatch
	}
	return p
}

// LineBreak matches \n, \r\n, a lone \r or the end of input. At end of input,
// the NUL terminator is consumed like any other line ending, so the returned
// position may be one past the end of s.
//
func LineBreak(s Source, p Pos) Pos {
	switch s.At(p) {
	case 0, '\n':
		return p + 1
	case '\r':
		if s.At(p+1) == '\n' {
			return p + 2
		}
		return p + 1
	}
	return NoMatch
}

// EndOfLine is a zero-width assertion that succeeds at end of input or in
// front of \n or \r.
//
func EndOfLine(s Source, p Pos) Pos {
	switch s.At(p) {
	case 0, '\n', '\r':
		return p
	}
	return NoMatch
}
