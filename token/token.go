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


// Package token defines the token types produced by the stylesheet tokenizer
// in package state.
//
package token

import (
	"strconv"

	"github.com/db47h/prelex"
)

// Token IDs
//
const (
	EOF         prelex.Token = iota // end of file
	Space                           // spaces and tabs
	Newline                         // \n, \r\n or \r
	Comment                         // /* block */ or // line comment
	Identifier                      // name, -name, --custom-property
	Variable                        // $name
	Int                             // 42
	Float                           // 3.14, .5, 1e3
	HexColor                        // #fff, #c0ffee
	Hash                            // #name
	String                          // "quoted" or 'quoted', value unescaped
	Punctuation                     // one of {}()[];:,
	RawChar                         // any other single byte
	Error       = prelex.Error      // error -- the associated value is a string
)

var names = [...]string{
	EOF:         "EOF",
	Space:       "SPACE",
	Newline:     "NEWLINE",
	Comment:     "COMMENT",
	Identifier:  "IDENT",
	Variable:    "VARIABLE",
	Int:         "INT",
	Float:       "FLOAT",
	HexColor:    "HEXCOLOR",
	Hash:        "HASH",
	String:      "STRING",
	Punctuation: "PUNCT",
	RawChar:     "RAWCHAR",
}

// Name returns the name of token t. Unknown tokens are named by their numeric
// value.
//
func Name(t prelex.Token) string {
	if t == Error {
		return "ERROR"
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Token(" + strconv.Itoa(int(t)) + ")"
}
