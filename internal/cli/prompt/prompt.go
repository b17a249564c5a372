// Package prompt provides the interactive prompts used to pick catalog items.
//
// [Prompter] is the contract the installer depends on. [Finder] renders
// full-screen fuzzy finders for terminals; [Line] reads numbered answers
// from any reader and is used when stdin is not a terminal.
package prompt

import (
	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrCancelled is returned when the user aborts a prompt (Esc, Ctrl+C,
// Ctrl+D or end of input). The installer exits cleanly on it.
var ErrCancelled = errors.New("selection cancelled")

// Choice is one selectable option.
type Choice struct {
	Title       string
	Description string
}

// Prompter asks the user questions and blocks until they answer.
type Prompter interface {
	// Select returns the index of one chosen option.
	Select(message string, choices []Choice) (int, error)
	// MultiSelect returns the indexes of the chosen options in the order the
	// user picked them. An empty result means nothing was chosen.
	MultiSelect(message string, choices []Choice) ([]int, error)
	// Confirm asks a yes/no question; initial is the default answer.
	Confirm(message string, initial bool) (bool, error)
}
