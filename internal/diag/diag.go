// Package diag formats lexer and parser errors for humans.
//
// A diagnostic prints the position and message followed by the offending
// source line with a caret underline:
//
//	main.perf:1:4: error: unexpected token
//	1 + while
//	    ^^^^^
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/parser"
	"github.com/kolkov/perflang/internal/token"
)

// Diagnostic is a located error message.
type Diagnostic struct {
	Pos     token.Position
	Length  int // underlined bytes, at least one is shown
	Message string
}

// FromError extracts a Diagnostic from a lexer or parser error.
func FromError(err error) (Diagnostic, bool) {
	var lerr *lexer.LexError
	if errors.As(err, &lerr) {
		return Diagnostic{Pos: lerr.Pos, Length: 1, Message: lerr.Message}, true
	}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		d := Diagnostic{Pos: perr.Pos(), Length: 1, Message: perr.Message}
		if perr.Token != nil {
			span := token.SpanOf(perr.Token)
			d.Length = max(1, span.End.Offset-span.Start.Offset)
		}
		return d, true
	}
	return Diagnostic{}, false
}

// Printer writes diagnostics against a source text.
type Printer struct {
	w     io.Writer
	src   string
	label *color.Color
	caret *color.Color
	plain *color.Color
}

// NewPrinter creates a Printer for src. Colors are used only when colored is true.
func NewPrinter(w io.Writer, src string, colored bool) *Printer {
	p := &Printer{
		w:     w,
		src:   src,
		label: color.New(color.FgRed, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		plain: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.caret, p.plain} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes d with its source excerpt.
func (p *Printer) Print(d Diagnostic) error {
	if d.Pos.IsValid() {
		if _, err := p.plain.Fprintf(p.w, "%s: ", d.Pos); err != nil {
			return err
		}
	}
	if _, err := p.label.Fprint(p.w, "error: "); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.w, d.Message); err != nil {
		return err
	}

	line, ok := lineAt(p.src, d.Pos)
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}

	col := min(d.Pos.Column, len(line))
	n := max(1, min(d.Length, len(line)-col))
	if _, err := fmt.Fprint(p.w, padding(line[:col])); err != nil {
		return err
	}
	_, err := p.caret.Fprintln(p.w, strings.Repeat("^", n))
	return err
}

// PrintError writes err as a diagnostic when it carries a position, or as a
// bare error line otherwise.
func (p *Printer) PrintError(err error) error {
	if d, ok := FromError(err); ok {
		return p.Print(d)
	}
	return p.Print(Diagnostic{Message: err.Error()})
}

// lineAt returns the source line containing pos.
func lineAt(src string, pos token.Position) (string, bool) {
	if !pos.IsValid() || pos.Offset > len(src) {
		return "", false
	}
	start := strings.LastIndexByte(src[:pos.Offset], '\n') + 1
	end := strings.IndexByte(src[pos.Offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += pos.Offset
	}
	return strings.TrimRight(src[start:end], "\r"), true
}

// padding returns whitespace as wide as prefix, keeping tabs so the caret
// lines up in a terminal.
func padding(prefix string) string {
	var sb strings.Builder
	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
