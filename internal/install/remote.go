package install

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/shell"
	"github.com/thoreinstein/skillset/internal/ui"
)

// ErrNoAddCommand indicates an entry that declares no add command.
var ErrNoAddCommand = errors.New("no add command")

// Remote installs catalog entries by running their commands.
type Remote struct {
	Runner  shell.Runner
	Printer *ui.Printer
	Logger  *slog.Logger
}

// Install processes entries one at a time in the given order. Dependency
// commands are best effort; the add command decides the entry's outcome.
func (r *Remote) Install(ctx context.Context, entries []catalog.Entry) Result {
	log := loggerOr(r.Logger)

	r.Printer.Banner("Installing packages...")

	var res Result
	for _, e := range entries {
		r.Printer.Progress(res.Done()+1, len(entries), e.Name)

		if strings.TrimSpace(e.Commands.Add) == "" {
			r.Printer.Failure("%s failed: no add command", e.Name)
			res.fail(e.Name, errors.Wrapf(ErrNoAddCommand, "%s", e.Name))
			continue
		}

		if deps := e.Commands.Dependencies.Requires; len(deps) > 0 {
			r.Printer.Info("Installing dependencies...")
			for _, cmd := range deps {
				if err := r.Runner.Run(ctx, cmd); err != nil {
					log.Warn("dependency failed", "skill", e.Name, "cmd", cmd, "error", err)
					r.Printer.Warn("Dependency failed, continuing...")
				}
			}
		}

		if err := r.Runner.Run(ctx, e.Commands.Add); err != nil {
			r.Printer.Failure("%s failed!", e.Name)
			res.fail(e.Name, err)
			continue
		}
		r.Printer.Success("%s installed!", e.Name)
		res.succeed(e.Name)
	}

	return res
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
