package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct{ lines []string }

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func echo(_ context.Context, line string, out io.Writer) error {
	if strings.Contains(line, "@") {
		return errors.New("bad line")
	}
	_, err := fmt.Fprintf(out, "[%s]\n", line)
	return err
}

func TestRunBlankLineExits(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("a\nb\n\nc\n"), &out, echo, Options{})

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 2}, stats)
	assert.Equal(t, "[a]\n[b]\n", out.String())
}

func TestRunEOF(t *testing.T) {
	var out bytes.Buffer
	log := &recordingLogger{}
	r := New(strings.NewReader("x\r\ny"), &out, echo, Options{Prompt: "> ", ShowPrompt: true, Logger: log})

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, "> [x]\n> [y]\n> ", out.String())
	assert.Equal(t, []string{"end of input after 2 lines"}, log.lines)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("a\n@\nb\n"), &out, echo, Options{})

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 3, Failed: 1}, stats)
	assert.Equal(t, "[a]\nError: bad line\n[b]\n", out.String())
}

func TestRunStopOnError(t *testing.T) {
	var out bytes.Buffer
	var reported []string
	r := New(strings.NewReader("@1\nb\n"), &out, echo, Options{
		StopOnError: true,
		OnError:     func(line string, err error) { reported = append(reported, line+": "+err.Error()) },
	})

	stats, err := r.Run(context.Background())
	assert.EqualError(t, err, "bad line")
	assert.Equal(t, Stats{Lines: 1, Failed: 1}, stats)
	assert.Equal(t, []string{"@1: bad line"}, reported)
	assert.Empty(t, out.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	eval := func(_ context.Context, line string, out io.Writer) error {
		cancel()
		return echo(ctx, line, out)
	}
	r := New(strings.NewReader("a\nb\n"), &out, eval, Options{})

	stats, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, stats.Lines)
	assert.Equal(t, "[a]\n", out.String())
}
