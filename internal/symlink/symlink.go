// Package symlink creates the relative links that install local items.
package symlink

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/paths"
)

// ErrDanglingLink indicates a freshly created link does not resolve.
var ErrDanglingLink = errors.New("created link does not resolve")

// Action reports what Link did to the target.
type Action int

const (
	// ActionCreated means a new link was created where nothing existed.
	ActionCreated Action = iota

	// ActionReplaced means an existing entry was removed and a link created.
	ActionReplaced

	// ActionUnchanged means the target already pointed at the source, or the
	// source already is the target.
	ActionUnchanged
)

// Skipped reports whether the filesystem was left untouched.
func (a Action) Skipped() bool {
	return a == ActionUnchanged
}

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionReplaced:
		return "replaced"
	case ActionUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Manager creates links. The zero value is usable and logs to slog.Default().
type Manager struct {
	Logger *slog.Logger
}

// NewManager returns a Manager that traces through logger.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{Logger: logger}
}

// Link makes target a symlink to source. The link content is the path of
// source relative to target's parent directory.
//
// A target that already links to source is left alone. Anything else at
// target (a different link, a dangling link, a file or a directory tree) is
// removed before the new link is created, so a failed creation leaves the
// target absent rather than half-written.
func (m *Manager) Link(source, target string) (Action, error) {
	log := m.logger()

	src, err := filepath.Abs(source)
	if err != nil {
		return ActionUnchanged, errors.Wrapf(err, "resolving source %s", source)
	}
	dst, err := filepath.Abs(target)
	if err != nil {
		return ActionUnchanged, errors.Wrapf(err, "resolving target %s", target)
	}

	if src == dst {
		log.Debug("source and target are the same", "target", dst)
		return ActionUnchanged, nil
	}

	action := ActionCreated
	info, err := os.Lstat(dst)
	switch {
	case err == nil:
		if info.Mode()&fs.ModeSymlink != 0 && linksTo(dst, src) {
			log.Debug("symlink already exists", "target", dst)
			return ActionUnchanged, nil
		}
		log.Debug("target exists but is not the expected symlink, removing", "target", dst)
		if err := os.RemoveAll(dst); err != nil {
			return ActionUnchanged, errors.Wrapf(err, "removing existing %s", dst)
		}
		action = ActionReplaced
	case !errors.Is(err, fs.ErrNotExist):
		return ActionUnchanged, errors.Wrapf(err, "inspecting %s", dst)
	}

	parent := filepath.Dir(dst)
	if err := paths.EnsureDir(parent, paths.DefaultDirPerm); err != nil {
		return ActionUnchanged, errors.Wrapf(err, "creating %s", parent)
	}

	// Relative content is interpreted from the physical directory holding
	// the link, which differs from parent when .claude is itself a link.
	rel := paths.Relative(physical(parent), filepath.Join(physical(filepath.Dir(src)), filepath.Base(src)))
	if err := os.Symlink(rel, dst); err != nil {
		log.Debug("symlink creation failed", "target", dst, "link", rel, "error", err)
		return ActionUnchanged, errors.Wrap(err, "creating symlink")
	}

	if _, err := os.Stat(dst); err != nil {
		_ = os.Remove(dst)
		return ActionUnchanged, errors.Wrapf(ErrDanglingLink, "%s -> %s", dst, rel)
	}

	log.Debug("created symlink", "target", dst, "link", rel, "action", action)
	return action, nil
}

// linksTo reports whether the symlink at link resolves to dest. Relative
// link contents are interpreted against the link's physical directory.
func linksTo(link, dest string) bool {
	content, err := os.Readlink(link)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(content) {
		content = filepath.Join(physical(filepath.Dir(link)), content)
	}
	if filepath.Clean(content) == dest {
		return true
	}

	got, err := filepath.EvalSymlinks(content)
	if err != nil {
		return false
	}
	want, err := filepath.EvalSymlinks(dest)
	return err == nil && got == want
}

// physical returns dir with symlinks resolved, or dir itself when it cannot
// be resolved yet.
func physical(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}

func (m *Manager) logger() *slog.Logger {
	if m == nil || m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}
