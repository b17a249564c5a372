package ui

import (
	"fmt"
)

// Failed is a failed item with its reason.
type Failed struct {
	Name   string
	Reason string
}

// Summary is the categorized outcome of one batch.
type Summary struct {
	// Title is the screen title, e.g. "Installation Summary".
	Title string
	// SucceededLabel names the success category, e.g. "Installed".
	SucceededLabel string
	Succeeded      []string
	Skipped        []string
	Failed         []Failed
}

// Summary renders s. Empty categories are omitted; failures list their
// reasons.
func (p *Printer) Summary(s Summary) {
	p.Header(s.Title)

	fmt.Fprintln(p.out)
	p.Section("Results:")

	if len(s.Succeeded) > 0 {
		p.success.Fprintf(p.out, "  ✓ %s: %d\n", s.SucceededLabel, len(s.Succeeded))
		for _, name := range s.Succeeded {
			p.dim.Fprintf(p.out, "    - %s\n", name)
		}
	}

	if len(s.Skipped) > 0 {
		fmt.Fprintln(p.out)
		p.warn.Fprintf(p.out, "  ⊙ Already linked: %d\n", len(s.Skipped))
		for _, name := range s.Skipped {
			p.dim.Fprintf(p.out, "    - %s\n", name)
		}
	}

	if len(s.Failed) > 0 {
		fmt.Fprintln(p.out)
		p.failure.Fprintf(p.out, "  ✗ Failed: %d\n", len(s.Failed))
		for _, f := range s.Failed {
			if f.Reason == "" {
				p.dim.Fprintf(p.out, "    - %s\n", f.Name)
				continue
			}
			p.dim.Fprintf(p.out, "    - %s: %s\n", f.Name, f.Reason)
		}
	}

	fmt.Fprintln(p.out)
}
