package install

import (
	"github.com/thoreinstein/skillset/internal/ui"
)

// Failure is an item that could not be installed.
type Failure struct {
	Name string
	Err  error
}

// Result accumulates per-item outcomes of one batch.
type Result struct {
	Succeeded []string
	// Skipped holds locals that were already linked correctly.
	Skipped []string
	Failed  []Failure
}

// Done returns how many items have been processed.
func (r *Result) Done() int {
	return len(r.Succeeded) + len(r.Skipped) + len(r.Failed)
}

func (r *Result) succeed(name string) { r.Succeeded = append(r.Succeeded, name) }

func (r *Result) skip(name string) { r.Skipped = append(r.Skipped, name) }

func (r *Result) fail(name string, err error) {
	r.Failed = append(r.Failed, Failure{Name: name, Err: err})
}

// Summary converts r for display.
func (r *Result) Summary(title, succeededLabel string) ui.Summary {
	s := ui.Summary{
		Title:          title,
		SucceededLabel: succeededLabel,
		Succeeded:      r.Succeeded,
		Skipped:        r.Skipped,
	}
	for _, f := range r.Failed {
		reason := ""
		if f.Err != nil {
			reason = f.Err.Error()
		}
		s.Failed = append(s.Failed, ui.Failed{Name: f.Name, Reason: reason})
	}
	return s
}
