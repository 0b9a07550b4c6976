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
	"strings"

	"github.com/db47h/prelex"
	"github.com/db47h/prelex/token"
)

const punctuation = "{}()[];:,"

// Stylesheet returns the initial state function of a tokenizer for CSS and
// SCSS source text, emitting the token types defined in package token.
//
// It is a flat token stream, not a parser: selectors, at-rules and values all
// come out as the same names, punctuation and raw chars, which is enough for
// syntax highlighting or as the input of a parser.
//
// As for the other state functions of this package, call Stylesheet once per
// lexer.
//
func Stylesheet() prelex.StateFn {
	var (
		spaces       = Spaces(token.Space)
		newline      = Newline(token.Newline)
		ident        = Identifier(token.Identifier)
		variable     = Variable(token.Variable)
		hash         = Hash(token.HexColor, token.Hash)
		number       = Number(token.Int, token.Float)
		quoted       = QuotedString(token.String)
		blockComment = BlockComment(token.Comment)
		lineComment  = LineComment(token.Comment)

		hashName     = prelex.Sequence(prelex.Exactly('#'), NameChar)
		dollarName   = prelex.Sequence(prelex.Exactly('$'), Name)
		blockStart   = prelex.Literal("/*")
		lineStart    = prelex.Literal("//")
		numberPrefix = prelex.Alternatives(prelex.Digit, Fraction)
	)

	return func(s *prelex.State) prelex.StateFn {
		pos := s.Pos()
		s.StartToken(pos)
		c := s.Peek()
		switch {
		case c == 0 && int(pos) >= len(s.Source()):
			s.Emit(pos, token.EOF, nil)
			return nil
		case c == 0:
			s.Errorf(pos, "invalid NUL character")
			s.Reset(pos + 1)
			return nil
		case c == '\n' || c == '\r':
			return newline
		case s.Test(Blank) != prelex.NoMatch:
			return spaces
		case c == '"' || c == '\'':
			return quoted
		case s.Test(blockStart) != prelex.NoMatch:
			return blockComment
		case s.Test(lineStart) != prelex.NoMatch:
			return lineComment
		case s.Test(dollarName) != prelex.NoMatch:
			return variable
		case s.Test(hashName) != prelex.NoMatch:
			return hash
		case s.Test(numberPrefix) != prelex.NoMatch:
			return number
		case s.Test(Name) != prelex.NoMatch:
			return ident
		case strings.IndexByte(punctuation, c) >= 0:
			s.Next()
			s.Emit(pos, token.Punctuation, string(c))
			return nil
		}
		s.Next()
		s.Emit(pos, token.RawChar, string(c))
		return nil
	}
}
