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

// OneOrMore returns a Matcher that applies m repeatedly and succeeds if m
// matched at least once. It is greedy: the returned position is the one past
// the last successful application of m.
//
// Repetition ends on the first match that does not advance, and after a match
// that consumed the end of input, so that combining with zero-width or
// end-consuming matchers always terminates.
//
func OneOrMore(m Matcher) Matcher {
	return func(s Source, p Pos) Pos { return oneOrMore(m, s, p) }
}

// ZeroOrMore is like OneOrMore but never fails: if m does not match at p, it
// returns p.
//
func ZeroOrMore(m Matcher) Matcher {
	return func(s Source, p Pos) Pos { return zeroOrMore(m, s, p) }
}

// Negate returns a Matcher that consumes exactly one byte when m does not
// match at p, and fails when it does.
//
// Unlike WordBoundary or EndOfLine, this is not a zero-width assertion. Use
// Lookahead(Negate(m)) where an assertion is needed.
//
func Negate(m Matcher) Matcher {
	return func(s Source, p Pos) Pos { return negate(m, s, p) }
}

func oneOrMore(m Matcher, s Source, p Pos) Pos {
	r := m(s, p)
	if r == NoMatch {
		return NoMatch
	}
	return repeat(m, s, r)
}

func zeroOrMore(m Matcher, s Source, p Pos) Pos {
	return repeat(m, s, p)
}

// repeat stops on failure, on a match that does not move forward (like
// AnyChar at end of input) and once the end of input has been consumed (like
// Negate or LineBreak at end of input). Any of these would otherwise loop
// forever.
func repeat(m Matcher, s Source, p Pos) Pos {
	for int(p) <= len(s) {
		r := m(s, p)
		if r <= p {
			return p
		}
		p = r
	}
	return p
}

func negate(m Matcher, s Source, p Pos) Pos {
	if m(s, p) != NoMatch {
		return NoMatch
	}
	return p + 1
}

// Exactly returns a Matcher for the single byte c.
//
func Exactly(c byte) Matcher {
	return func(s Source, p Pos) Pos {
		if s.At(p) == c {
			return p + 1
		}
		return NoMatch
	}
}

// Literal returns a Matcher for the exact byte sequence lit. An empty literal
// always matches without advancing.
//
func Literal(lit string) Matcher {
	return func(s Source, p Pos) Pos {
		for i := 0; i < len(lit); i++ {
			if s.At(p+Pos(i)) != lit[i] || lit[i] == 0 {
				return NoMatch
			}
		}
		return p + Pos(len(lit))
	}
}

// Optional returns a Matcher that tries m and succeeds without advancing if m
// fails.
//
func Optional(m Matcher) Matcher {
	return func(s Source, p Pos) Pos {
		if r := m(s, p); r != NoMatch {
			return r
		}
		return p
	}
}

// Sequence returns a Matcher that applies each of ms in turn, each starting
// where the previous one stopped. It fails as a whole if any of them fails.
//
func Sequence(ms ...Matcher) Matcher {
	return func(s Source, p Pos) Pos {
		for _, m := range ms {
			if p = m(s, p); p == NoMatch {
				return NoMatch
			}
		}
		return p
	}
}

// Alternatives returns a Matcher that returns the result of the first of ms
// that matches at p.
//
func Alternatives(ms ...Matcher) Matcher {
	return func(s Source, p Pos) Pos {
		for _, m := range ms {
			if r := m(s, p); r != NoMatch {
				return r
			}
		}
		return NoMatch
	}
}

// Lookahead returns a zero-width Matcher that succeeds, without advancing,
// when m matches at p.
//
func Lookahead(m Matcher) Matcher {
	return func(s Source, p Pos) Pos {
		if m(s, p) == NoMatch {
			return NoMatch
		}
		return p
	}
}

// Between returns a Matcher that applies m at least min and at most max
// times. Like OneOrMore, it stops early on a match that does not advance or
// once the end of input has been consumed.
//
func Between(m Matcher, min, max int) Matcher {
	return func(s Source, p Pos) Pos {
		n := 0
		for ; n < max && int(p) <= len(s); n++ {
			r := m(s, p)
			if r <= p {
				break
			}
			p = r
		}
		if n < min {
			return NoMatch
		}
		return p
	}
}
