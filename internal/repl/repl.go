// Package repl implements the line-at-a-time interactive loop of the perf
// driver. Each input line is handed to an evaluator on its own; a blank line
// or end of input ends the session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger receives debug messages about the session.
type Logger interface {
	Debugf(format string, args ...any)
}

// EvalFunc evaluates one input line, writing results to out.
type EvalFunc func(ctx context.Context, line string, out io.Writer) error

// Options configures a REPL.
type Options struct {
	// Prompt is written before each line when ShowPrompt is set.
	Prompt string
	// ShowPrompt enables the prompt; usually set only for terminals.
	ShowPrompt bool
	// OnError is called with the line and error of a failed evaluation.
	// When nil the error is written to the output.
	OnError func(line string, err error)
	// StopOnError ends the session after the first failed line.
	StopOnError bool
	// Logger receives session events. May be nil.
	Logger Logger
}

// REPL reads lines from an input and evaluates them one at a time.
type REPL struct {
	in   *bufio.Scanner
	out  io.Writer
	eval EvalFunc
	opts Options
}

// New creates a REPL reading from in and writing to out.
func New(in io.Reader, out io.Writer, eval EvalFunc, opts Options) *REPL {
	return &REPL{
		in:   bufio.NewScanner(in),
		out:  out,
		eval: eval,
		opts: opts,
	}
}

// Stats summarizes a finished session.
type Stats struct {
	Lines  int // evaluated lines
	Failed int // lines whose evaluation returned an error
}

// Run loops until a blank line, end of input or cancellation of ctx.
// The context is checked between lines. With StopOnError set, the error of
// the failing line is returned.
func (r *REPL) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if r.opts.ShowPrompt {
			if _, err := io.WriteString(r.out, r.opts.Prompt); err != nil {
				return stats, err
			}
		}

		if !r.in.Scan() {
			r.debugf("end of input after %d lines", stats.Lines)
			return stats, r.in.Err()
		}
		line := strings.TrimRight(r.in.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			r.debugf("blank line, leaving after %d lines", stats.Lines)
			return stats, nil
		}

		stats.Lines++
		if err := r.eval(ctx, line, r.out); err != nil {
			stats.Failed++
			r.debugf("line %d failed: %v", stats.Lines, err)
			r.report(line, err)
			if r.opts.StopOnError {
				return stats, err
			}
		}
	}
}

func (r *REPL) report(line string, err error) {
	if r.opts.OnError != nil {
		r.opts.OnError(line, err)
		return
	}
	fmt.Fprintf(r.out, "Error: %v\n", err)
}

func (r *REPL) debugf(format string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Debugf(format, args...)
	}
}
