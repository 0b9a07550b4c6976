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
	"fmt"
	"log/slog"
)

// A Token represents the type of a token. Custom lexers can use any value >= 0.
//
type Token int

// Error is the token type for error tokens.
//
const Error Token = -1

// queue is a FIFO queue.
//
type queue struct {
	items []item
	head  int
	tail  int
	count int
}

type item struct {
	t Token
	p Pos
	v interface{}
}

func (q *queue) push(t Token, p Pos, v interface{}) {
	if q.head == q.tail && q.count > 0 {
		items := make([]item, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = item{t, p, v}
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() (Token, Pos, interface{}) {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	it := &q.items[i]
	return it.t, it.p, it.v
}

// Lexer wraps the public methods of a lexer. This interface is intended for
// parsers that call NewLexer(), then Lex() until EOF.
//
type Lexer state

// State holds the internal state of the lexer while processing a given input.
// Note that the public methods should only be called from custom StateFn
// functions.
//
type State state

type state struct {
	queue         // Item queue
	f     *File   // source file
	src   Source  // f.Source()
	state StateFn // current state
	init  StateFn // current initial-state function.
	p     Pos     // current position
	ts    Pos     // token start position
	opts  options
}

// A StateFn is a state function.
//
// If a StateFn returns nil, the lexer transitions back to its initial state
// function.
//
type StateFn func(s *State) StateFn

// NewLexer creates a new lexer associated with the given source file. A new
// lexer must be created for every source file to be lexed.
//
func NewLexer(f *File, init StateFn, opts ...Option) *Lexer {
	o := options{
		queueSize: 2,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Lexer{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]item, o.queueSize)},
		f:     f,
		src:   f.Source(),
		init:  init,
		opts:  o,
	}
}

// Init (re-)sets the initial state function for the lexer. It can be used by
// state functions to implement context switches (e.g. switch from plain CSS
// to an interpolation context). This function returns its argument.
//
func (s *State) Init(initState StateFn) StateFn {
	s.init = initState
	return initState
}

// Lex reads source text and returns the next item until EOF.
//
// As a convention, once the end of file has been reached, Lex() must return a
// token type that indicates an EOF condition. Implementors of custom lexers
// must take care of this.
//
func (l *Lexer) Lex() (Token, Pos, interface{}) {
	for l.count == 0 {
		st := (*State)(l)
		if l.state == nil {
			l.state = l.init(st)
		} else {
			l.state = l.state(st)
		}
	}
	return l.pop()
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *File {
	return l.f
}

// Emit emits a single token of the given type and value positioned at p.
//
func (s *State) Emit(p Pos, t Token, value interface{}) {
	s.opts.logger.Debug("emit", "pos", s.f.Position(p).String(), "token", int(t), "value", value)
	s.push(t, p, value)
}

// Errorf emits an error token with type Error. The item value is set to a
// string representation of the error and the position set to p.
//
func (s *State) Errorf(p Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	pos := s.f.Position(p)
	s.opts.logger.Debug("error", "pos", pos.String(), "err", msg)
	if s.opts.errorHandler != nil {
		s.opts.errorHandler(pos, msg)
	}
	s.push(Error, p, msg)
}

// Pos returns the current position.
//
func (s *State) Pos() Pos {
	return s.p
}

// Reset moves the current position back (or forward) to p, usually a
// position saved earlier by a state function that needs to backtrack.
//
func (s *State) Reset(p Pos) {
	s.p = p
}

// Source returns the input being lexed.
//
func (s *State) Source() Source {
	return s.src
}

// Peek returns the byte at the current position, or 0 at end of input.
//
func (s *State) Peek() byte {
	return s.src.At(s.p)
}

// Next returns the byte at the current position and advances past it. At end
// of input, it returns 0 and does not advance.
//
func (s *State) Next() byte {
	c := s.src.At(s.p)
	s.p = AnyChar(s.src, s.p)
	return c
}

// EOF returns true if the current position is at end of input.
//
func (s *State) EOF() bool {
	return s.src.At(s.p) == 0
}

// Match applies m at the current position. On success, it advances to the end
// of the match and returns true. On failure, the position is left untouched.
//
func (s *State) Match(m Matcher) bool {
	r := m(s.src, s.p)
	if r == NoMatch {
		return false
	}
	s.p = r
	return true
}

// Test applies m at the current position and returns its result without
// moving.
//
func (s *State) Test(m Matcher) Pos {
	return m(s.src, s.p)
}

// StartToken sets p as a token start position. This is a utility function that
// when used in conjunction with TokenPos and Text enables tracking of a token
// start position across a StateFn chain without having to manually keep track
// of it via closures or function parameters.
//
// This is typically called at the start of the initial state function:
//
//	func stateInit(s *prelex.State) prelex.StateFn {
//		s.StartToken(s.Pos())
//		switch {
//		case s.Match(prelex.Alpha):
//			return stateIdentifier
//		default:
//			// ...
//		}
//		return nil
//	}
//
//	func stateIdentifier(s *prelex.State) prelex.StateFn {
//		s.Match(prelex.ZeroOrMore(prelex.Character))
//		s.Emit(s.TokenPos(), tokIdentifier, string(s.Text()))
//		return nil
//	}
//
func (s *State) StartToken(p Pos) {
	s.ts = p
}

// TokenPos returns the position set by StartToken.
//
func (s *State) TokenPos() Pos {
	return s.ts
}

// Text returns the input between the token start position and the current
// position. The returned slice aliases the input.
//
func (s *State) Text() []byte {
	start, end := int(s.ts), int(s.p)
	if end > len(s.src) {
		end = len(s.src)
	}
	if start > end {
		return nil
	}
	return s.src[start:end]
}
