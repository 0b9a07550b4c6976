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

// The classifiers below work on raw byte values only. Each range test relies
// on unsigned wrap-around: c-lo underflows to a large value when c < lo, so a
// single comparison checks both bounds.

// A Classifier reports whether a byte belongs to a character class.
//
type Classifier func(c byte) bool

// IsAlpha reports whether c is an ASCII letter.
//
func IsAlpha(c byte) bool {
	return c-'A' <= 'Z'-'A' || c-'a' <= 'z'-'a'
}

// IsSpace reports whether c is a space or one of \t, \n, \v, \f and \r.
//
func IsSpace(c byte) bool {
	return c == ' ' || c-'\t' <= '\r'-'\t'
}

// IsDigit reports whether c is a decimal digit.
//
func IsDigit(c byte) bool {
	return c-'0' <= '9'-'0'
}

// IsXDigit reports whether c is a hexadecimal digit.
//
func IsXDigit(c byte) bool {
	return c-'0' <= '9'-'0' ||
		c-'a' <= 'f'-'a' ||
		c-'A' <= 'F'-'A'
}

// IsPunct reports whether c is a punctuation mark. Only '.' qualifies.
//
func IsPunct(c byte) bool {
	return c == '.'
}

// IsAlnum reports whether c is an ASCII letter or digit.
//
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsUnicode reports whether c lies outside the ASCII range. Multi-byte UTF-8
// sequences are never decoded: every byte of such a sequence is unicode.
//
func IsUnicode(c byte) bool {
	return c > 127
}

// IsCharacter reports whether c may continue a name: a letter, a digit, a
// non-ASCII byte or a hyphen.
//
func IsCharacter(c byte) bool {
	return IsAlnum(c) || IsUnicode(c) || c == '-'
}
