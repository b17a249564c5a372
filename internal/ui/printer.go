// Package ui renders the installer's screens: headers, item listings,
// per-item progress and batch summaries.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/skillset/internal/logging"
)

const (
	ruleWidth = 59
	clearSeq  = "\033[H\033[2J"
)

// Printer writes styled output. Styling and screen clearing are only used
// when the writer is a color-capable terminal.
type Printer struct {
	out      io.Writer
	terminal bool

	title   *color.Color
	bright  *color.Color
	dim     *color.Color
	accent  *color.Color
	success *color.Color
	warn    *color.Color
	failure *color.Color
}

// NewPrinter returns a Printer for out, detecting color support.
func NewPrinter(out io.Writer) *Printer {
	return newPrinter(out, logging.SupportsColor(out))
}

// NewPlainPrinter returns a Printer that never emits escape sequences.
func NewPlainPrinter(out io.Writer) *Printer {
	return newPrinter(out, false)
}

func newPrinter(out io.Writer, styled bool) *Printer {
	p := &Printer{
		out:      out,
		terminal: styled,
		title:    color.New(color.FgCyan),
		bright:   color.New(color.Bold),
		dim:      color.New(color.Faint),
		accent:   color.New(color.FgYellow),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		failure:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.title, p.bright, p.dim, p.accent, p.success, p.warn, p.failure} {
		if styled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Header clears the screen on terminals and prints the installer banner
// with an optional screen title.
func (p *Printer) Header(screen string) {
	if p.terminal {
		fmt.Fprint(p.out, clearSeq)
	}
	label := "Skills Installer"
	if screen != "" {
		label += " - " + screen
	}
	p.title.Fprintln(p.out, "╔"+strings.Repeat("═", ruleWidth+1)+"╗")
	p.title.Fprintf(p.out, "║     %-*s║\n", ruleWidth-4, label)
	p.title.Fprintln(p.out, "╚"+strings.Repeat("═", ruleWidth+1)+"╝")
	fmt.Fprintln(p.out)
}

// Section prints a bold heading followed by an underline of matching width.
func (p *Printer) Section(heading string) {
	p.bright.Fprintf(p.out, "  %s\n", heading)
	p.dim.Fprintf(p.out, "  %s\n", strings.Repeat("─", len([]rune(heading))))
	fmt.Fprintln(p.out)
}

// Rule prints a horizontal divider.
func (p *Printer) Rule() {
	p.dim.Fprintln(p.out, strings.Repeat("─", ruleWidth))
}

// Item prints a numbered listing entry with detail lines. Details whose
// label is empty are printed dimmed; labelled details are highlighted.
func (p *Printer) Item(index int, name string, details ...Detail) {
	p.title.Fprintf(p.out, "  %d. %s\n", index, name)
	for _, d := range details {
		if d.Label == "" {
			p.dim.Fprintf(p.out, "     %s\n", d.Value)
			continue
		}
		p.accent.Fprintf(p.out, "     %s: %s\n", d.Label, d.Value)
	}
	fmt.Fprintln(p.out)
}

// Detail is one line under a listed item.
type Detail struct {
	Label string
	Value string
}

// Progress announces item i of n.
func (p *Printer) Progress(i, n int, name string) {
	fmt.Fprintln(p.out)
	p.bright.Fprintf(p.out, "  [%d/%d] %s\n", i, n, name)
}

// Banner prints a bold status line followed by a double rule.
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.out)
	p.bright.Fprintf(p.out, "  %s\n", text)
	p.dim.Fprintf(p.out, "  %s\n", strings.Repeat("═", ruleWidth))
}

// Info prints an indented neutral line.
func (p *Printer) Info(format string, args ...any) {
	p.warn.Fprintf(p.out, "    "+format+"\n", args...)
}

// Success prints an indented ✓ line.
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, "    ✓ "+format+"\n", args...)
}

// Skipped prints an indented ⊙ line.
func (p *Printer) Skipped(format string, args ...any) {
	p.warn.Fprintf(p.out, "    ⊙ "+format+"\n", args...)
}

// Warn prints an indented ⚠ line.
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, "    ⚠ "+format+"\n", args...)
}

// Failure prints an indented ✗ line.
func (p *Printer) Failure(format string, args ...any) {
	p.failure.Fprintf(p.out, "    ✗ "+format+"\n", args...)
}

// Notice prints a top-level message surrounded by blank lines.
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintln(p.out)
	p.success.Fprintf(p.out, "  "+format+"\n", args...)
	fmt.Fprintln(p.out)
}

// Note prints a top-level yellow message.
func (p *Printer) Note(format string, args ...any) {
	p.warn.Fprintf(p.out, "  "+format+"\n", args...)
}
