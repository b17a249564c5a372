package install

import (
	"bytes"
	"context"
	"testing"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/ui"
)

// answer is one scripted reply. Exactly one of the fields is meaningful,
// depending on the prompt it answers.
type answer struct {
	index   int
	indexes []int
	yes     bool
	err     error
}

// scriptedPrompter replays answers in order and records every question.
type scriptedPrompter struct {
	t       *testing.T
	answers []answer
	asked   []string
	offered [][]prompt.Choice
}

func (p *scriptedPrompter) next(message string, choices []prompt.Choice) answer {
	p.t.Helper()
	p.asked = append(p.asked, message)
	p.offered = append(p.offered, choices)
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected prompt %q", message)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *scriptedPrompter) Select(message string, choices []prompt.Choice) (int, error) {
	a := p.next(message, choices)
	return a.index, a.err
}

func (p *scriptedPrompter) MultiSelect(message string, choices []prompt.Choice) ([]int, error) {
	a := p.next(message, choices)
	return a.indexes, a.err
}

func (p *scriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	a := p.next(message, nil)
	return a.yes, a.err
}

func (p *scriptedPrompter) exhausted() bool {
	return len(p.answers) == 0
}

// recordingRunner records commands and fails those listed in fail.
type recordingRunner struct {
	ran  []string
	fail map[string]bool
}

func (r *recordingRunner) Run(_ context.Context, command string) error {
	r.ran = append(r.ran, command)
	if r.fail[command] {
		return errors.Newf("running %q: exit status 1", command)
	}
	return nil
}

func plainPrinter() (*ui.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return ui.NewPlainPrinter(&buf), &buf
}

func titles(choices []prompt.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Title
	}
	return out
}

