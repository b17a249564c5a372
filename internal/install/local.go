package install

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/local"
	"github.com/thoreinstein/skillset/internal/symlink"
	"github.com/thoreinstein/skillset/internal/ui"
)

// Linker creates one link. *symlink.Manager implements it.
type Linker interface {
	Link(source, target string) (symlink.Action, error)
}

// Local installs local entries by linking them into the project.
type Local struct {
	Resolver *local.Resolver
	Linker   Linker
	Printer  *ui.Printer
	Logger   *slog.Logger
}

// Install resolves and links entries one at a time in the given order.
// Resolution failures leave the filesystem untouched.
func (l *Local) Install(ctx context.Context, entries []catalog.LocalEntry) Result {
	log := loggerOr(l.Logger)

	l.Printer.Banner("Creating symlinks...")
	log.Debug("linking local items", "project", l.Resolver.ProjectDir, "items", len(entries))

	var res Result
	for _, e := range entries {
		if ctx.Err() != nil {
			res.fail(e.Name, ctx.Err())
			continue
		}

		l.Printer.Progress(res.Done()+1, len(entries), e.Name)
		log.Debug("resolving local item", "name", e.Name, "type", e.Type, "path", e.Path)

		r, err := l.Resolver.Resolve(e)
		if err != nil {
			l.Printer.Failure("%s failed: %v", e.Name, err)
			res.fail(e.Name, err)
			continue
		}
		log.Debug("resolved local item", "source", r.Source, "target", r.Target)

		action, err := l.Linker.Link(r.Source, r.Target)
		switch {
		case err != nil:
			l.Printer.Failure("%s failed: %v", e.Name, err)
			res.fail(e.Name, err)
		case action.Skipped():
			l.Printer.Skipped("%s already linked", e.Name)
			res.skip(e.Name)
		default:
			l.Printer.Success("%s linked!", e.Name)
			res.succeed(e.Name)
		}
	}

	return res
}
