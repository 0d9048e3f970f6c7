// Copyright © 2025 The Peano authors

package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/peanolang/peano/parser"
	"github.com/peanolang/peano/peano"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
	reduce bool
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithReduce makes the REPL rewrite input under the restricted reduction
// semantics instead of full evaluation.
func WithReduce(reduce bool) Option {
	return func(c *config) {
		c.reduce = reduce
	}
}

// RunRepl runs a read-eval-print loop over a vanilla interpreter.
func RunRepl(prompt string, opts ...Option) {
	cfg := newConfig(opts...)

	envOpts := []peano.Config{
		peano.WithReader(parser.NewReader()),
	}
	if cfg.stderr != nil {
		envOpts = append(envOpts, peano.WithStderr(cfg.stderr))
	}
	interp, err := peano.NewInterpreter(envOpts...)
	if err != nil {
		errlnf("Language initialization failure: %v", err)
		os.Exit(1)
	}

	RunInterpreter(interp, prompt, strings.Repeat(" ", len(prompt)), opts...)
}

// RunInterpreter runs a read-eval-print loop over interp.  The cont prompt
// is displayed while a bracketed expression remains open across lines.
func RunInterpreter(interp *peano.Interpreter, prompt, cont string, opts ...Option) {
	cfg := newConfig(opts...)
	stderr := interp.Env().Runtime.Stderr
	if cfg.stderr != nil {
		stderr = cfg.stderr
	}

	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       historyPath(),
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{env: interp.Env()},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		src, ok := readExpression(rl, prompt, cont)
		if !ok {
			break
		}
		if src == "" {
			continue
		}
		exprs, err := interp.ParseProgram("stdin", strings.NewReader(src))
		if err != nil {
			fmt.Fprintln(stderr, err) //nolint:errcheck // best-effort error display
			continue
		}
		for _, expr := range exprs {
			var val *peano.PVal
			if cfg.reduce {
				val = interp.Reduce(expr)
			} else {
				val = interp.Eval(expr)
			}
			fmt.Fprintln(stderr, val) //nolint:errcheck // best-effort REPL output
		}
	}
}

// readExpression reads input lines until every opened bracket is closed,
// switching to the continuation prompt for held-open lines.  It returns
// false once the input stream ends.
func readExpression(rl *readline.Instance, prompt, cont string) (string, bool) {
	var buf bytes.Buffer
	rl.SetPrompt(prompt)
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			return "", true
		}
		if err != nil {
			return "", false
		}
		line = bytes.TrimSpace(line)
		if buf.Len() == 0 && len(line) == 0 {
			return "", true
		}
		buf.Write(line)
		if bracketDepth(buf.Bytes()) <= 0 {
			return buf.String(), true
		}
		buf.WriteByte('\n')
		rl.SetPrompt(cont)
	}
}

func bracketDepth(src []byte) int {
	depth := 0
	for _, c := range src {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return depth
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".peano_history")
}

func errlnf(format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		errf(format, v...)
		return
	}
	errf(format+"\n", v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
