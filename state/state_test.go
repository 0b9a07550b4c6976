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


package state_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/db47h/prelex"
	"github.com/db47h/prelex/state"
	"github.com/db47h/prelex/token"
	"github.com/google/go-cmp/cmp"
)

func itemString(f *prelex.File, t prelex.Token, p prelex.Pos, v interface{}) string {
	pos := f.Position(p)
	s := fmt.Sprintf("%d:%d %s", pos.Line, pos.Column, token.Name(t))
	switch v := v.(type) {
	case nil:
	case string:
		if t == token.Error {
			return s + " " + v
		}
		s += " " + strconv.Quote(v)
	default:
		panic(fmt.Sprintf("unexpected value type %T", v))
	}
	return s
}

type res []string

type testData struct {
	name string
	in   string
	res  res
}

func runTests(t *testing.T, td []testData) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			f := prelex.NewFile(sample.name, []byte(sample.in))
			l := prelex.NewLexer(f, state.Stylesheet())
			var got res
			for {
				tt, p, v := l.Lex()
				if tt == token.EOF {
					if int(p) != len(sample.in) {
						t.Errorf("EOF at %d, expected %d", p, len(sample.in))
					}
					break
				}
				got = append(got, itemString(f, tt, p, v))
			}
			if diff := cmp.Diff(sample.res, got); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_Spaces(t *testing.T) {
	runTests(t, []testData{
		{"spaces", "a \t b\n\r\nc", res{
			`1:1 IDENT "a"`, `1:2 SPACE`, `1:5 IDENT "b"`, `1:6 NEWLINE`, `2:1 NEWLINE`, `3:1 IDENT "c"`,
		}},
		{"lone_cr", "a\rb", res{`1:1 IDENT "a"`, `1:2 NEWLINE`, `2:1 IDENT "b"`}},
		{"vt_ff", "\v\f", res{`1:1 SPACE`}},
	})
}

func Test_Identifier(t *testing.T) {
	runTests(t, []testData{
		{"idents", "foo-bar --main-color -webkit-box _x é2 -2", res{
			`1:1 IDENT "foo-bar"`, `1:8 SPACE`,
			`1:9 IDENT "--main-color"`, `1:21 SPACE`,
			`1:22 IDENT "-webkit-box"`, `1:33 SPACE`,
			`1:34 IDENT "_x"`, `1:36 SPACE`,
			`1:37 IDENT "é2"`, `1:40 SPACE`,
			`1:41 RAWCHAR "-"`, `1:42 INT "2"`,
		}},
		{"escape", `a\:b c`, res{`1:1 IDENT "a\\:b"`, `1:5 SPACE`, `1:6 IDENT "c"`}},
		{"variable", "$primary-color: #fff;", res{
			`1:1 VARIABLE "primary-color"`, `1:15 PUNCT ":"`, `1:16 SPACE`, `1:17 HEXCOLOR "fff"`, `1:21 PUNCT ";"`,
		}},
		{"dollar", "$ $1", res{`1:1 RAWCHAR "$"`, `1:2 SPACE`, `1:3 RAWCHAR "$"`, `1:4 INT "1"`}},
	})
}

func Test_Hash(t *testing.T) {
	runTests(t, []testData{
		{"hash", "#abc #abcd #aabbcc #aabbccdd #abcde #main-nav #123x #1a2", res{
			`1:1 HEXCOLOR "abc"`, `1:5 SPACE`,
			`1:6 HEXCOLOR "abcd"`, `1:11 SPACE`,
			`1:12 HEXCOLOR "aabbcc"`, `1:19 SPACE`,
			`1:20 HEXCOLOR "aabbccdd"`, `1:29 SPACE`,
			`1:30 HASH "abcde"`, `1:36 SPACE`,
			`1:37 HASH "main-nav"`, `1:46 SPACE`,
			`1:47 ERROR invalid hex color "#123x"`, `1:52 SPACE`,
			`1:53 HEXCOLOR "1a2"`,
		}},
		{"interpolation", "#{$a}", res{`1:1 RAWCHAR "#"`, `1:2 PUNCT "{"`, `1:3 VARIABLE "a"`, `1:5 PUNCT "}"`}},
	})
}

func Test_Number(t *testing.T) {
	runTests(t, []testData{
		{"numbers", "12 3.5 .5 1e3 2E-2 10px 1.e 7.", res{
			`1:1 INT "12"`, `1:3 SPACE`,
			`1:4 FLOAT "3.5"`, `1:7 SPACE`,
			`1:8 FLOAT ".5"`, `1:10 SPACE`,
			`1:11 FLOAT "1e3"`, `1:14 SPACE`,
			`1:15 FLOAT "2E-2"`, `1:19 SPACE`,
			`1:20 INT "10"`, `1:22 IDENT "px"`, `1:24 SPACE`,
			`1:25 INT "1"`, `1:26 RAWCHAR "."`, `1:27 IDENT "e"`, `1:28 SPACE`,
			`1:29 INT "7"`, `1:30 RAWCHAR "."`,
		}},
		{"em", "1em 2e+", res{`1:1 INT "1"`, `1:2 IDENT "em"`, `1:4 SPACE`, `1:5 INT "2"`, `1:6 IDENT "e"`, `1:7 RAWCHAR "+"`}},
	})
}

func Test_Number_panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on invalid input")
		}
	}()
	f := prelex.NewFile("", []byte("x"))
	prelex.NewLexer(f, state.Number(token.Int, token.Float)).Lex()
}

func Test_QuotedString(t *testing.T) {
	runTests(t, []testData{
		{"strings", "\"abc\" 'd\\'e' \"\\41 B\" \"a\\\nb\" \"\\1F600\" \"\\0\" \"x", res{
			`1:1 STRING "abc"`, `1:6 SPACE`,
			`1:7 STRING "d'e"`, `1:13 SPACE`,
			`1:14 STRING "AB"`, `1:21 SPACE`,
			`1:22 STRING "ab"`, `2:3 SPACE`,
			`2:4 STRING ` + strconv.Quote("\U0001F600"), `2:12 SPACE`,
			`2:13 STRING ` + strconv.Quote("\uFFFD"), `2:17 SPACE`,
			`2:18 ERROR unterminated string`,
		}},
		{"eol", "'ab\nc'", res{
			`1:1 ERROR unterminated string`, `1:4 NEWLINE`, `2:1 IDENT "c"`, `2:2 ERROR unterminated string`,
		}},
		{"crlf_escape", "'\\41\r\nB'", res{`1:1 STRING "AB"`}},
		{"other_quote", `"it's"`, res{`1:1 STRING "it's"`}},
		{"backslash_eof", `'\`, res{`1:1 ERROR unterminated string`}},
		{"surrogate", `'\D800'`, res{`1:1 STRING ` + strconv.Quote("\uFFFD")}},
	})
}

func Test_Comment(t *testing.T) {
	runTests(t, []testData{
		{"comments", "a /* b\n*/ c // d\ne /* f", res{
			`1:1 IDENT "a"`, `1:2 SPACE`,
			`1:3 COMMENT "/* b\n*/"`, `2:3 SPACE`,
			`2:4 IDENT "c"`, `2:5 SPACE`,
			`2:6 COMMENT "// d"`, `2:10 NEWLINE`,
			`3:1 IDENT "e"`, `3:2 SPACE`,
			`3:3 ERROR unterminated comment`,
		}},
		{"slash", "a/b", res{`1:1 IDENT "a"`, `1:2 RAWCHAR "/"`, `1:3 IDENT "b"`}},
		{"empty_line_comment", "//", res{`1:1 COMMENT "//"`}},
	})
}

func Test_Punctuation(t *testing.T) {
	runTests(t, []testData{
		{"punct", "@media(x){a:b;}~%", res{
			`1:1 RAWCHAR "@"`, `1:2 IDENT "media"`, `1:7 PUNCT "("`, `1:8 IDENT "x"`, `1:9 PUNCT ")"`,
			`1:10 PUNCT "{"`, `1:11 IDENT "a"`, `1:12 PUNCT ":"`, `1:13 IDENT "b"`, `1:14 PUNCT ";"`,
			`1:15 PUNCT "}"`, `1:16 RAWCHAR "~"`, `1:17 RAWCHAR "%"`,
		}},
		{"nul", "a\x00b", res{`1:1 IDENT "a"`, `1:2 ERROR invalid NUL character`, `1:3 IDENT "b"`}},
		{"empty", "", nil},
	})
}

func Test_Matchers(t *testing.T) {
	data := []struct {
		name string
		m    prelex.Matcher
		in   string
		want prelex.Pos
	}{
		{"blank", state.Blank, " ", 1},
		{"blank_nl", state.Blank, "\n", prelex.NoMatch},
		{"blank_cr", state.Blank, "\r", prelex.NoMatch},
		{"blank_eof", state.Blank, "", prelex.NoMatch},
		{"hex_escape", state.HexEscape, `\0000410`, 7},
		{"hex_escape_space", state.HexEscape, `\41 x`, 4},
		{"hex_escape_crlf", state.HexEscape, "\\41\r\nx", 5},
		{"escape", state.Escape, `\:`, 2},
		{"escape_eol", state.Escape, "\\\n", prelex.NoMatch},
		{"continuation", state.Continuation, "\\\r\n", 3},
		{"continuation_eof", state.Continuation, `\`, prelex.NoMatch},
		{"name", state.Name, "a-b c", 3},
		{"name_custom", state.Name, "--", 2},
		{"name_digit", state.Name, "1a", prelex.NoMatch},
		{"name_hyphen_digit", state.Name, "-1", prelex.NoMatch},
		{"name_unicode", state.Name, "日本", 6},
		{"line_comment", state.LineCommentText, "// x\r\ny", 4},
		{"fraction", state.Fraction, ".5", 2},
		{"fraction_fail", state.Fraction, ".e", prelex.NoMatch},
		{"exponent", state.Exponent, "e-10", 4},
		{"exponent_fail", state.Exponent, "em", prelex.NoMatch},
	}
	for _, td := range data {
		t.Run(td.name, func(t *testing.T) {
			if got := td.m(prelex.Source(td.in), 0); got != td.want {
				t.Errorf("match %q: got %d, expected %d", td.in, got, td.want)
			}
		})
	}
}
