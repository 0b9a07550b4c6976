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
	"log/slog"
	"os"
	"strconv"

	"github.com/db47h/prelex"
	"github.com/db47h/prelex/state"
	"github.com/db47h/prelex/token"
	"github.com/spf13/cobra"
)

type config struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	debug     bool
	skipSpace bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "prelex",
		Short:         "Tokenize CSS and SCSS source files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVar(&cfg.debug, "debug", false, "Log every emitted token to stderr")

	tokensCmd := &cobra.Command{
		Use:   "tokens FILE...",
		Short: "Print the tokens of each file, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.run(args, true)
		},
	}
	tokensCmd.Flags().BoolVar(&cfg.skipSpace, "skip-space", false, "Do not print whitespace and newline tokens")

	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report lexing errors only",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.run(args, false)
		},
	}

	rootCmd.AddCommand(tokensCmd, checkCmd)
	return rootCmd
}

func (c *config) logger() *slog.Logger {
	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove timestamp for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func (c *config) open(name string) (*prelex.File, error) {
	if name == "-" {
		return prelex.ReadFile("<stdin>", c.stdin)
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return prelex.ReadFile(name, fh)
}

func (c *config) run(files []string, printTokens bool) error {
	log := c.logger()
	errs := 0
	for _, name := range files {
		f, err := c.open(name)
		if err != nil {
			return err
		}
		log.Debug("lexing", "file", f.Name(), "bytes", len(f.Source()), "lines", f.Lines())
		errs += c.lex(f, log, printTokens)
	}
	if errs > 0 {
		return fmt.Errorf("%d lexing error(s)", errs)
	}
	return nil
}

func (c *config) lex(f *prelex.File, log *slog.Logger, printTokens bool) int {
	errs := 0
	l := prelex.NewLexer(f, state.Stylesheet(), prelex.Logger(log))
	for {
		t, p, v := l.Lex()
		switch t {
		case token.EOF:
			return errs
		case token.Error:
			errs++
			reportError(c.stderr, f, p, v.(string))
			continue
		case token.Space, token.Newline:
			if c.skipSpace {
				continue
			}
		}
		if printTokens {
			printToken(c.stdout, f.Position(p), t, v)
		}
	}
}

func printToken(w io.Writer, pos prelex.Position, t prelex.Token, v interface{}) {
	switch v := v.(type) {
	case string:
		fmt.Fprintf(w, "%s %s %s\n", pos, token.Name(t), strconv.Quote(v))
	default:
		fmt.Fprintf(w, "%s %s\n", pos, token.Name(t))
	}
}
