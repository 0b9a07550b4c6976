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
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Pos represents a byte offset within a Source.
//
type Pos int

// NoMatch is the Pos returned by a Matcher that fails. It is distinct from
// every valid position, including the end of input.
//
const NoMatch Pos = -1

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// Common errors.
var (
	ErrLine = errors.New("invalid line number")
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents an input file. It holds the whole source text and
// handles offset to line/column conversion.
//
type File struct {
	name  string
	src   Source
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File for the given source text. Lines end with \n,
// \r\n or a lone \r. The file takes ownership of src.
//
func NewFile(name string, src []byte) *File {
	f := &File{
		name:  name,
		src:   Source(src),
		lines: []Pos{0},
	}
	end := Pos(len(src))
	for p := Pos(0); p < end; {
		if src[p] != 0 {
			if e := LineBreak(f.src, p); e != NoMatch {
				f.lines = append(f.lines, e)
				p = e
				continue
			}
		}
		p++
	}
	return f
}

// ReadFile reads all of r and returns a new File. Input starting with a
// UTF-16 byte order mark is transcoded to UTF-8, and a UTF-8 byte order mark
// is dropped. Any other input is kept byte for byte.
//
func ReadFile(name string, r io.Reader) (*File, error) {
	src, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return NewFile(name, src), nil
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the file contents.
//
func (f *File) Source() Source {
	return f.src
}

// Lines returns the number of lines in the file.
//
func (f *File) Lines() int {
	return len(f.lines)
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset. Invalid positions yield a Position with only the
// file name set.
//
func (f *File) Position(pos Pos) Position {
	if !pos.IsValid() {
		return Position{Filename: f.name}
	}
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, i, int(pos - f.lines[i-1] + 1)}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the text of the line holding pos, without its line ending.
// The returned slice aliases the file contents.
//
func (f *File) Line(pos Pos) ([]byte, error) {
	if !pos.IsValid() || int(pos) > len(f.src) {
		return nil, ErrLine
	}
	start := f.LinePos(f.Position(pos).Line)
	end := start
	for EndOfLine(f.src, end) == NoMatch {
		end++
	}
	return f.src[start:end], nil
}
