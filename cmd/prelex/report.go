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


package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/prelex"
	"golang.org/x/text/width"
)

// reportError reports a lexing error in the form:
//
//	file:line:col: error description
//	|source line where the error occurred
//	|     ^
//
// with the caret below the error position.
func reportError(w io.Writer, f *prelex.File, p prelex.Pos, msg string) {
	pos := f.Position(p)
	fmt.Fprintf(w, "%s: error %s\n", pos, msg)
	l, err := f.Line(p)
	if err != nil {
		return
	}
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Fprintf(w, "|%s\n", l)
	fmt.Fprintf(w, "|%s^\n", padding(l[:b]))
}

// padding returns the blank text that fills as many cells as l, supposing
// rendering with a UTF-8 locale and monospaced font. Tabs are kept as is.
func padding(l []byte) string {
	var b strings.Builder
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			b.WriteString("  ")
		default:
			// EastAsianAmbiguous depends on user locale: 2 if locale is CJK, 1 otherwise.
			b.WriteByte(' ')
		}
	}
	return b.String()
}
