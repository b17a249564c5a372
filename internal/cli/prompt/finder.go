package prompt

import (
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillset/internal/errors"
)

// backend is the subset of go-fuzzyfinder the Finder drives.
type backend interface {
	find(choices []Choice, label func(i int) string, opts ...fuzzyfinder.Option) (int, error)
	findMulti(choices []Choice, label func(i int) string, opts ...fuzzyfinder.Option) ([]int, error)
}

type terminalBackend struct{}

func (terminalBackend) find(choices []Choice, label func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
	return fuzzyfinder.Find(choices, label, opts...)
}

func (terminalBackend) findMulti(choices []Choice, label func(i int) string, opts ...fuzzyfinder.Option) ([]int, error) {
	return fuzzyfinder.FindMulti(choices, label, opts...)
}

// Finder prompts with full-screen fuzzy finders. Tab marks items in
// MultiSelect; Esc cancels.
type Finder struct {
	backend backend
}

// NewFinder returns a Finder drawing on the terminal.
func NewFinder() *Finder {
	return &Finder{backend: terminalBackend{}}
}

// Select implements Prompter.
func (f *Finder) Select(message string, choices []Choice) (int, error) {
	idx, err := f.backend.find(choices, titleOf(choices), options(message, choices)...)
	if err != nil {
		return 0, mapAbort(err)
	}
	return idx, nil
}

// MultiSelect implements Prompter.
func (f *Finder) MultiSelect(message string, choices []Choice) ([]int, error) {
	idxs, err := f.backend.findMulti(choices, titleOf(choices), options(message+" (Tab to mark)", choices)...)
	if err != nil {
		return nil, mapAbort(err)
	}
	return idxs, nil
}

// Confirm implements Prompter. The default answer is listed first so Enter
// accepts it.
func (f *Finder) Confirm(message string, initial bool) (bool, error) {
	answers := []Choice{{Title: "Yes"}, {Title: "No"}}
	if !initial {
		answers[0], answers[1] = answers[1], answers[0]
	}

	idx, err := f.backend.find(answers, titleOf(answers), fuzzyfinder.WithHeader(message))
	if err != nil {
		return false, mapAbort(err)
	}
	return answers[idx].Title == "Yes", nil
}

func titleOf(choices []Choice) func(i int) string {
	return func(i int) string { return choices[i].Title }
}

func options(message string, choices []Choice) []fuzzyfinder.Option {
	opts := []fuzzyfinder.Option{fuzzyfinder.WithHeader(message)}

	for _, c := range choices {
		if c.Description == "" {
			continue
		}
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return choices[i].Title + "\n\n" + choices[i].Description
		}))
		break
	}
	return opts
}

func mapAbort(err error) error {
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return ErrCancelled
	}
	return errors.Wrap(err, "interactive selection failed")
}
