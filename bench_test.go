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

import (
	"bytes"
	"testing"
)

func benchSource() Source {
	return Source(bytes.Repeat([]byte("  foo-bar: 123.45 #c0ffee;\r\n"), 1<<10))
}

func TestMatchers_noAlloc(t *testing.T) {
	src := benchSource()
	for name, m := range map[string]Matcher{
		"Spaces":         Spaces,
		"Digits":         Digits,
		"NoSpaces":       NoSpaces,
		"OptionalSpaces": OptionalSpaces,
		"LineBreak":      LineBreak,
		"EndOfLine":      EndOfLine,
		"WordBoundary":   WordBoundary,
	} {
		if n := testing.AllocsPerRun(100, func() { m(src, 0) }); n != 0 {
			t.Errorf("%s: %v allocs per run", name, n)
		}
	}
}

func BenchmarkClassifiers(b *testing.B) {
	src := benchSource()
	n := 0
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		for _, c := range src {
			if IsCharacter(c) || IsSpace(c) || IsXDigit(c) {
				n++
			}
		}
	}
	_ = n
}

func BenchmarkMatchers(b *testing.B) {
	src := benchSource()
	name := Sequence(Alpha, ZeroOrMore(Character), WordBoundary)
	number := Sequence(Digits, Optional(Sequence(Punct, Digits)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := Pos(0); int(p) < len(src); {
			switch {
			case p != OptionalSpaces(src, p):
				p = OptionalSpaces(src, p)
			case name(src, p) != NoMatch:
				p = name(src, p)
			case number(src, p) != NoMatch:
				p = number(src, p)
			default:
				p = AnyChar(src, p)
			}
		}
	}
}
