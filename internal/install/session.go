package install

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/ui"
)

// Session is one interactive run: the main menu followed by the chosen
// installation flow.
type Session struct {
	Catalog  *catalog.Catalog
	Prompter prompt.Prompter
	Printer  *ui.Printer
	Remote   *Remote
	Local    *Local
	Logger   *slog.Logger
}

type menuAction int

const (
	actionRemote menuAction = iota
	actionLocal
	actionExit
)

// Run shows the main menu and runs the selected flow. It returns
// prompt.ErrCancelled when the user cancels any prompt.
func (s *Session) Run(ctx context.Context) error {
	s.Printer.Header("")

	choices := []prompt.Choice{{Title: "Install skills"}}
	actions := []menuAction{actionRemote}
	if n := len(s.Catalog.Locals()); n > 0 && s.Local != nil {
		choices = append(choices, prompt.Choice{Title: fmt.Sprintf("Install local (%d items)", n)})
		actions = append(actions, actionLocal)
	}
	choices = append(choices, prompt.Choice{Title: "Exit"})
	actions = append(actions, actionExit)

	idx, err := s.Prompter.Select("What would you like to do?", choices)
	if err != nil {
		return err
	}

	switch actions[idx] {
	case actionRemote:
		err = s.remoteFlow().run(ctx)
	case actionLocal:
		err = s.localFlow().run(ctx)
	}
	if err != nil {
		return err
	}

	s.Printer.Notice("Goodbye!")
	return nil
}

func (s *Session) trace(flowName string) func(from, to step) {
	log := loggerOr(s.Logger)
	return func(from, to step) {
		log.Debug("flow transition", "flow", flowName, "from", from, "to", to)
	}
}

func (s *Session) remoteFlow() *flow[catalog.Entry] {
	groups := s.Catalog.Groups()
	categories := make([]prompt.Choice, len(groups))
	for i, g := range groups {
		categories[i] = prompt.Choice{Title: g}
	}

	return &flow[catalog.Entry]{
		prompter:   s.Prompter,
		printer:    s.Printer,
		categories: categories,
		text: flowText{
			categoriesScreen:  "Select Groups",
			categoriesMessage: "Which groups would you like to install from?",
			itemsScreen:       "Select Packages",
			itemsMessage:      "Which packages would you like to install?",
			noItems:           "No packages found in selected groups.",
			confirmScreen:     "Confirm Installation",
			confirmHeading:    "Packages to install:",
			confirmMessage:    "Install these packages?",
			summaryTitle:      "Installation Summary",
			succeededLabel:    "Installed",
			againMessage:      "Install more packages?",
		},
		itemsIn: func(idxs []int) []catalog.Entry {
			return s.Catalog.SkillsInGroups(pick(groups, idxs))
		},
		choice: func(e catalog.Entry) prompt.Choice {
			return prompt.Choice{Title: e.Title(), Description: e.Description}
		},
		describe: func(i int, e catalog.Entry) {
			var details []ui.Detail
			if e.Description != "" {
				details = append(details, ui.Detail{Value: e.Description})
			}
			details = append(details, ui.Detail{Label: "Command", Value: e.Commands.Add})
			for _, dep := range e.Commands.Dependencies.Requires {
				details = append(details, ui.Detail{Label: "Requires", Value: dep})
			}
			s.Printer.Item(i, e.Name, details...)
		},
		execute: s.Remote.Install,
		trace:   s.trace("remote"),
	}
}

func (s *Session) localFlow() *flow[catalog.LocalEntry] {
	types := s.Catalog.LocalTypes()
	categories := make([]prompt.Choice, len(types))
	for i, t := range types {
		categories[i] = prompt.Choice{Title: t.Label()}
	}

	return &flow[catalog.LocalEntry]{
		prompter:   s.Prompter,
		printer:    s.Printer,
		categories: categories,
		text: flowText{
			categoriesScreen:  "Select Local Types",
			categoriesMessage: "Which types would you like to install from?",
			itemsScreen:       "Select Local Items",
			itemsMessage:      "Which local items would you like to install?",
			noItems:           "No items found in selected types.",
			confirmScreen:     "Confirm Local Installation",
			confirmHeading:    "Items to link:",
			confirmMessage:    "Create symlinks for these items?",
			summaryTitle:      "Local Installation Summary",
			succeededLabel:    "Linked",
			againMessage:      "Install more local items?",
		},
		itemsIn: func(idxs []int) []catalog.LocalEntry {
			return s.Catalog.LocalsOfTypes(pick(types, idxs))
		},
		choice: func(l catalog.LocalEntry) prompt.Choice {
			desc := l.Path
			if d := s.Local.Resolver.Describe(l); d != "" {
				desc = d + " - " + l.Path
			}
			return prompt.Choice{Title: l.Title(), Description: desc}
		},
		describe: func(i int, l catalog.LocalEntry) {
			details := []ui.Detail{
				{Label: "Type", Value: string(l.Type)},
				{Label: "Source", Value: l.Path},
			}
			if r, err := s.Local.Resolver.Resolve(l); err != nil {
				details = append(details, ui.Detail{Label: "Target", Value: "unresolved (" + err.Error() + ")"})
			} else {
				details = append(details, ui.Detail{Label: "Target", Value: s.projectRelative(r.Target)})
			}
			s.Printer.Item(i, l.Name, details...)
		},
		execute: s.Local.Install,
		trace:   s.trace("local"),
	}
}

// projectRelative shortens target for display when it lies in the project.
func (s *Session) projectRelative(target string) string {
	rel, err := filepath.Rel(s.Local.Resolver.ProjectDir, target)
	if err != nil || !filepath.IsLocal(rel) {
		return target
	}
	return rel
}

func pick[T any](all []T, idxs []int) []T {
	out := make([]T, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, all[i])
	}
	return out
}
