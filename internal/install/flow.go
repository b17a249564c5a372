package install

import (
	"context"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/ui"
)

// step is a state of the selection flow.
type step int

const (
	stepSelectCategories step = iota
	stepSelectItems
	stepConfirm
	stepExecute
	stepAgain
	stepDone
)

func (s step) String() string {
	switch s {
	case stepSelectCategories:
		return "select-categories"
	case stepSelectItems:
		return "select-items"
	case stepConfirm:
		return "confirm"
	case stepExecute:
		return "execute"
	case stepAgain:
		return "again"
	case stepDone:
		return "done"
	default:
		return "unknown"
	}
}

// flowText holds the wording of one flow's screens.
type flowText struct {
	categoriesScreen  string
	categoriesMessage string
	itemsScreen       string
	itemsMessage      string
	noItems           string
	confirmScreen     string
	confirmHeading    string
	confirmMessage    string
	summaryTitle      string
	succeededLabel    string
	againMessage      string
}

// flow drives one installation loop over items of type T. Categories are
// groups for remote skills and types for locals.
type flow[T any] struct {
	prompter prompt.Prompter
	printer  *ui.Printer
	text     flowText

	// categories lists the selectable categories.
	categories []prompt.Choice
	// itemsIn returns the items belonging to the chosen category indexes.
	itemsIn func(categories []int) []T
	// choice renders an item for selection.
	choice func(item T) prompt.Choice
	// describe prints item i of the confirmation listing.
	describe func(i int, item T)
	// execute installs the confirmed items.
	execute func(ctx context.Context, items []T) Result

	// trace receives every state transition; nil disables tracing.
	trace func(from, to step)
}

// run loops until the user stops or a prompt fails. Prompt errors,
// including prompt.ErrCancelled, are returned unchanged.
func (f *flow[T]) run(ctx context.Context) error {
	var (
		categories []int
		items      []T
	)

	current := stepSelectCategories
	for current != stepDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := f.step(ctx, current, &categories, &items)
		if err != nil {
			return err
		}
		if f.trace != nil {
			f.trace(current, next)
		}
		current = next
	}
	return nil
}

func (f *flow[T]) step(ctx context.Context, current step, categories *[]int, items *[]T) (step, error) {
	switch current {
	case stepSelectCategories:
		f.printer.Header(f.text.categoriesScreen)
		picked, err := f.prompter.MultiSelect(f.text.categoriesMessage, f.categories)
		if err != nil {
			return stepDone, err
		}
		if len(picked) == 0 {
			return stepDone, nil
		}
		*categories = picked
		return stepSelectItems, nil

	case stepSelectItems:
		candidates := f.itemsIn(*categories)
		if len(candidates) == 0 {
			f.printer.Note(f.text.noItems)
			return stepSelectCategories, nil
		}

		f.printer.Header(f.text.itemsScreen)
		choices := make([]prompt.Choice, len(candidates))
		for i, c := range candidates {
			choices[i] = f.choice(c)
		}
		picked, err := f.prompter.MultiSelect(f.text.itemsMessage, choices)
		if err != nil {
			return stepDone, err
		}
		if len(picked) == 0 {
			f.printer.Note("No items selected.")
			return stepSelectCategories, nil
		}

		selected := make([]T, 0, len(picked))
		for _, i := range picked {
			selected = append(selected, candidates[i])
		}
		*items = selected
		return stepConfirm, nil

	case stepConfirm:
		f.printer.Header(f.text.confirmScreen)
		f.printer.Section(f.text.confirmHeading)
		for i, item := range *items {
			f.describe(i+1, item)
		}
		f.printer.Rule()

		ok, err := f.prompter.Confirm(f.text.confirmMessage, true)
		if err != nil {
			return stepDone, err
		}
		if !ok {
			return stepSelectCategories, nil
		}
		return stepExecute, nil

	case stepExecute:
		res := f.execute(ctx, *items)
		f.printer.Summary(res.Summary(f.text.summaryTitle, f.text.succeededLabel))
		return stepAgain, nil

	case stepAgain:
		again, err := f.prompter.Confirm(f.text.againMessage, false)
		if err != nil {
			return stepDone, err
		}
		if again {
			return stepSelectCategories, nil
		}
		return stepDone, nil
	}

	return stepDone, nil
}
