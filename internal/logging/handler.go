package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// palette holds the colors used on a color-capable writer.
type palette struct {
	time, key              *color.Color
	debug, info, warn, err *color.Color
}

func newPalette() *palette {
	return &palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
	}
}

func (p *palette) level(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	default:
		return p.debug
	}
}

// Handler writes one human-readable line per record:
//
//	3:04PM WARN  could not load catalog file=mcp.json
//
// Colors are used only when the writer is a color-capable terminal.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	colors *palette
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a Handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

// Enabled reports whether level meets the configured minimum, Info by default.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}
	return level >= threshold
}

// Handle renders r and writes it with a single call.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var line bytes.Buffer

	if !r.Time.IsZero() {
		line.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		line.WriteByte(' ')
	}

	level := r.Level.String()
	if h.colors != nil {
		level = h.colors.level(r.Level).Sprint(level)
	}
	fmt.Fprintf(&line, "%-5s %s", level, r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&line, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&line, a)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(line.Bytes())
	return err
}

func (h *Handler) writeAttr(line *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(append(slices.Clone(h.groups), key), ".")
	}

	value := a.Value.Any()
	if s, ok := value.(string); ok && (s == "" || strings.ContainsAny(s, " \t\n\"=")) {
		value = strconv.Quote(s)
	}

	fmt.Fprintf(line, " %s=%v", h.paint(h.keyColor(), key), value)
}

func (h *Handler) timeColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.time
}

func (h *Handler) keyColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.key
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// WithAttrs returns a copy of h that prefixes every record with attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Concat(h.attrs, attrs)
	return &c
}

// WithGroup returns a copy of h whose keys are qualified by name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(slices.Clone(h.groups), name)
	return &c
}
