package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether f is a terminal. It accepts *os.File and any
// wrapper exposing Fd.
func IsTTY(f any) bool {
	if fd, ok := f.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fd.Fd()))
	}
	return false
}

// Interactive reports whether both in and out are terminals, which is what
// the full-screen finder needs.
func Interactive(in io.Reader, out io.Writer) bool {
	return IsTTY(in) && IsTTY(out)
}

// SupportsColor reports whether ANSI colors should be written to w. It is
// false when w is not a terminal, NO_COLOR is set, or TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
