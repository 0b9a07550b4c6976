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
	"log/slog"
)

type options struct {
	queueSize    int
	logger       *slog.Logger
	errorHandler func(pos Position, msg string)
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// QueueSize sets the initial size of the lexer's item queue. The queue grows
// as needed; n is rounded up to the next power of two.
//
func QueueSize(n int) Option {
	return func(o *options) {
		sz := 1
		for sz < n {
			sz <<= 1
		}
		o.queueSize = sz
	}
}

// Logger sets a logger for the lexer. Emitted items and errors are logged at
// debug level. By default nothing is logged.
//
func Logger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// ErrorHandler defines a custom error handler callback. It is called whenever
// a state function reports an error, in addition to the Error item being
// queued.
//
func ErrorHandler(f func(pos Position, msg string)) Option {
	return func(o *options) {
		o.errorHandler = f
	}
}
