// perf - perf language front end
//
// Digests a perf source file and prints its token stream or syntax tree.
// Without a file argument it reads one line at a time from stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kolkov/perflang"
	"github.com/kolkov/perflang/internal/diag"
	"github.com/kolkov/perflang/internal/repl"
)

// errReported marks an error whose diagnostic was already printed.
var errReported = errors.New("error reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stdinIsTerminal := func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr, stdinIsTerminal)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "perf: %v\n", err)
		}
		os.Exit(1)
	}
}

// options holds the command line flags.
type options struct {
	configFile  string
	verbose     bool
	ast         bool
	format      string
	filter      string
	color       bool
	stopOnError bool
}

// app carries the streams of one invocation.
type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	opts       options
}

func newRootCmd(in io.Reader, out, errOut io.Writer, isTerminal func() bool) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, isTerminal: isTerminal}

	cmd := &cobra.Command{
		Use:   "perf [file]",
		Short: "perf - tokenize and parse perf source",
		Long: `perf digests perf source code.

With a file argument the file is tokenized and the token stream printed,
or with --ast the parsed syntax tree. Without a file, perf reads stdin one
line at a time; an empty line or end of input exits.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       perflang.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetVersionTemplate("perf version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&a.opts.configFile, "config", "", "config file (TOML, or YAML by .yaml/.yml extension)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log debug messages to stderr")
	flags.BoolVar(&a.opts.ast, "ast", false, "print the syntax tree instead of the tokens")
	flags.StringVar(&a.opts.format, "format", "text", "output format: text, table or yaml")
	flags.StringVar(&a.opts.filter, "filter", "", "only print tokens whose TOKEN_* name matches this regex")
	flags.BoolVar(&a.opts.color, "color", false, "color diagnostics")
	flags.BoolVar(&a.opts.stopOnError, "stop-on-error", false, "end the interactive session at the first failing line")
	return cmd
}

// config loads the config file, if any, and applies the flags given on the
// command line over it.
func (a *app) config(cmd *cobra.Command) (*perflang.Config, error) {
	cfg := perflang.DefaultConfig()
	if a.opts.configFile != "" {
		loaded, err := perflang.LoadConfig(a.opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = a.opts.verbose
	}
	if flags.Changed("ast") {
		cfg.Mode = perflang.ModeTokens
		if a.opts.ast {
			cfg.Mode = perflang.ModeAST
		}
	}
	if flags.Changed("format") {
		cfg.Format = a.opts.format
	}
	if flags.Changed("filter") {
		cfg.Filter = a.opts.filter
	}
	if flags.Changed("color") {
		cfg.Color = a.opts.color
	}
	if flags.Changed("stop-on-error") {
		cfg.StopOnError = a.opts.stopOnError
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}

	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   syncWriter(a.errOut),
		IncludeDebug: cfg.Verbose,
	})

	if len(args) == 1 {
		return a.runFile(args[0], cfg, log)
	}
	return a.runREPL(cmd.Context(), cfg, log)
}

func (a *app) runFile(path string, cfg *perflang.Config, log *logger.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not open file '%s'", path)
	}
	src := string(data)
	log.Debugf("read %s from %s", humanize.Bytes(uint64(len(data))), path)

	if err := perflang.Exec(path, src, a.out, cfg); err != nil {
		return a.report(src, cfg, err)
	}
	log.Debugf("digested %s in %s mode", path, cfg.Mode)
	return nil
}

func (a *app) runREPL(ctx context.Context, cfg *perflang.Config, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	eval := func(_ context.Context, line string, out io.Writer) error {
		return perflang.Exec("", line, out, cfg)
	}
	r := repl.New(a.in, a.out, eval, repl.Options{
		Prompt:     cfg.Prompt,
		ShowPrompt: a.isTerminal(),
		OnError: func(line string, err error) {
			_ = a.report(line, cfg, err)
		},
		StopOnError: cfg.StopOnError,
		Logger:      log,
	})

	stats, err := r.Run(ctx)
	log.Debugf("session ended: %s lines, %s failed", humanize.Comma(int64(stats.Lines)), humanize.Comma(int64(stats.Failed)))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if _, ok := diag.FromError(err); ok {
		// Already printed by OnError.
		return errReported
	}
	return err
}

// report prints err as a diagnostic against src.
func (a *app) report(src string, cfg *perflang.Config, err error) error {
	if _, ok := diag.FromError(err); !ok {
		return err
	}
	if perr := diag.NewPrinter(a.errOut, src, cfg.Color).PrintError(err); perr != nil {
		return perr
	}
	return errReported
}

type nopSyncer struct{ io.Writer }

func (nopSyncer) Sync() error { return nil }

// syncWriter adapts w to the logger's writer interface.
func syncWriter(w io.Writer) logger.SyncWriter {
	if s, ok := w.(logger.SyncWriter); ok {
		return s
	}
	return nopSyncer{w}
}
