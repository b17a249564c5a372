package prompt

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrInvalidSelection indicates an answer that names no option.
var ErrInvalidSelection = errors.New("invalid selection")

// Line prompts with numbered lists on a plain reader and writer. Invalid
// answers are reported and asked again.
type Line struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLineWithIO creates a Line prompter reading answers from r and writing
// lists to w.
func NewLineWithIO(r io.Reader, w io.Writer) *Line {
	return &Line{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Select implements Prompter. An empty answer picks the first option.
func (l *Line) Select(message string, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return 0, errors.Wrap(ErrInvalidSelection, "no options")
	}

	l.list(message, choices)
	for {
		input, err := l.ask("Select [1]: ")
		if err != nil {
			return 0, err
		}
		if input == "" {
			return 0, nil
		}

		n, err := parseIndex(input, len(choices))
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(l.writer, "  %v\n", err)
	}
}

// MultiSelect implements Prompter. Answers are numbers separated by commas
// or spaces, ranges such as 2-4, or "all". An empty answer selects nothing.
func (l *Line) MultiSelect(message string, choices []Choice) ([]int, error) {
	l.list(message, choices)
	for {
		input, err := l.ask("Select (e.g. 1,3 or all, empty for none): ")
		if err != nil {
			return nil, err
		}
		if input == "" {
			return nil, nil
		}

		picked, err := parseIndexes(input, len(choices))
		if err == nil {
			return picked, nil
		}
		fmt.Fprintf(l.writer, "  %v\n", err)
	}
}

// Confirm implements Prompter. Only y/yes and n/no are accepted, case-insensitively.
func (l *Line) Confirm(message string, initial bool) (bool, error) {
	hint := "[y/N]"
	if initial {
		hint = "[Y/n]"
	}

	for {
		input, err := l.ask(fmt.Sprintf("%s %s ", message, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "":
			return initial, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.writer, "  Please answer y or n.")
	}
}

func (l *Line) list(message string, choices []Choice) {
	fmt.Fprintf(l.writer, "%s\n", message)
	for i, c := range choices {
		if c.Description != "" {
			fmt.Fprintf(l.writer, "  [%d] %s - %s\n", i+1, c.Title, c.Description)
			continue
		}
		fmt.Fprintf(l.writer, "  [%d] %s\n", i+1, c.Title)
	}
}

// ask prints label and returns the trimmed answer. End of input and "q"
// cancel the prompt.
func (l *Line) ask(label string) (string, error) {
	fmt.Fprint(l.writer, label)

	input, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return "", ErrCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading selection")
		}
	}

	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "q") {
		return "", ErrCancelled
	}
	return input, nil
}

// parseIndex converts a 1-indexed answer into a 0-indexed position.
func parseIndex(s string, n int) (int, error) {
	selection, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", s)
	}
	if selection < 1 || selection > n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
	}
	return selection - 1, nil
}

func parseIndexes(s string, n int) ([]int, error) {
	if strings.EqualFold(s, "all") {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	var picked []int
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, f := range fields {
		lo, hi, isRange := strings.Cut(f, "-")
		if !isRange {
			hi = lo
		}
		start, err := parseIndex(lo, n)
		if err != nil {
			return nil, err
		}
		end, err := parseIndex(hi, n)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, errors.Wrapf(ErrInvalidSelection, "range %q is reversed", f)
		}
		for i := start; i <= end; i++ {
			if !slices.Contains(picked, i) {
				picked = append(picked, i)
			}
		}
	}
	return picked, nil
}
