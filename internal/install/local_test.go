//go:build !windows

package install

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/local"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/symlink"
)

func newLocal(t *testing.T, project string) (*Local, func() string) {
	t.Helper()
	printer, buf := plainPrinter()
	logger := logging.ForTest(t)
	return &Local{
		Resolver: local.NewResolver(project),
		Linker:   symlink.NewManager(logger),
		Printer:  printer,
		Logger:   logger,
	}, buf.String
}

func TestLocal_InstallLinksSkillAndAgent(t *testing.T) {
	t.Parallel()

	lib := t.TempDir()
	project := t.TempDir()

	skillDir := filepath.Join(lib, "lint")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	agentDir := filepath.Join(lib, "reviewer")
	require.NoError(t, os.MkdirAll(agentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(agentDir, "reviewer.md"), []byte("# r"), 0o644))

	l, out := newLocal(t, project)
	res := l.Install(context.Background(), []catalog.LocalEntry{
		{Name: "lint", Type: catalog.TypeSkill, Path: skillDir},
		{Name: "reviewer", Type: catalog.TypeAgent, Path: agentDir},
	})

	assert.Equal(t, []string{"lint", "reviewer"}, res.Succeeded)
	assert.Empty(t, res.Failed)

	dest, err := os.Readlink(filepath.Join(paths.SkillsDir(project), "lint"))
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(dest), "link content must be relative: %s", dest)

	resolved, err := filepath.EvalSymlinks(filepath.Join(paths.AgentsDir(project), "reviewer.md"))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(agentDir, "reviewer.md"))
	require.NoError(t, err)
	assert.Equal(t, want, resolved)

	assert.Contains(t, out(), "Creating symlinks...")
	assert.Contains(t, out(), "✓ lint linked!")
}

func TestLocal_InstallSecondRunSkips(t *testing.T) {
	t.Parallel()

	lib := t.TempDir()
	project := t.TempDir()
	skillDir := filepath.Join(lib, "lint")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	entries := []catalog.LocalEntry{{Name: "lint", Type: catalog.TypeSkill, Path: skillDir}}

	l, out := newLocal(t, project)
	first := l.Install(context.Background(), entries)
	require.Equal(t, []string{"lint"}, first.Succeeded)

	second := l.Install(context.Background(), entries)
	assert.Empty(t, second.Succeeded)
	assert.Equal(t, []string{"lint"}, second.Skipped)
	assert.Contains(t, out(), "⊙ lint already linked")
}

func TestLocal_InstallMissingSourceFailsWithoutMutation(t *testing.T) {
	t.Parallel()

	for _, typ := range []catalog.LocalType{catalog.TypeSkill, catalog.TypeAgent} {
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			project := t.TempDir()
			l, _ := newLocal(t, project)

			res := l.Install(context.Background(), []catalog.LocalEntry{
				{Name: "bar", Type: typ, Path: filepath.Join(t.TempDir(), "bar")},
			})

			assert.Empty(t, res.Succeeded)
			require.Len(t, res.Failed, 1)
			assert.Equal(t, "bar", res.Failed[0].Name)
			assert.True(t, errors.Is(res.Failed[0].Err, local.ErrSourceNotFound))
			assert.Contains(t, res.Failed[0].Err.Error(), "source path not found")
			assert.NoDirExists(t, filepath.Join(project, paths.ClaudeDir))
		})
	}
}

func TestLocal_InstallAgentFolderWithoutMarkdown(t *testing.T) {
	t.Parallel()

	agentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(agentDir, "notes.txt"), nil, 0o644))

	l, _ := newLocal(t, t.TempDir())
	res := l.Install(context.Background(), []catalog.LocalEntry{
		{Name: "empty", Type: catalog.TypeAgent, Path: agentDir},
	})

	require.Len(t, res.Failed, 1)
	assert.True(t, errors.Is(res.Failed[0].Err, local.ErrNoMarkdown))
}

type failingLinker struct{ err error }

func (f failingLinker) Link(string, string) (symlink.Action, error) {
	return symlink.ActionCreated, f.err
}

func TestLocal_InstallLinkFailureContinues(t *testing.T) {
	t.Parallel()

	lib := t.TempDir()
	a := filepath.Join(lib, "a")
	b := filepath.Join(lib, "b")
	require.NoError(t, os.MkdirAll(a, 0o755))
	require.NoError(t, os.MkdirAll(b, 0o755))

	l, _ := newLocal(t, t.TempDir())
	l.Linker = failingLinker{err: errors.New("permission denied")}

	res := l.Install(context.Background(), []catalog.LocalEntry{
		{Name: "a", Type: catalog.TypeSkill, Path: a},
		{Name: "b", Type: catalog.TypeSkill, Path: b},
	})

	require.Len(t, res.Failed, 2)
	assert.Equal(t, "permission denied", res.Failed[0].Err.Error())
}

func TestLocal_InstallCancelledContext(t *testing.T) {
	t.Parallel()

	lib := t.TempDir()
	project := t.TempDir()
	skillDir := filepath.Join(lib, "lint")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l, _ := newLocal(t, project)
	res := l.Install(ctx, []catalog.LocalEntry{{Name: "lint", Type: catalog.TypeSkill, Path: skillDir}})

	require.Len(t, res.Failed, 1)
	assert.True(t, errors.Is(res.Failed[0].Err, context.Canceled))
	assert.NoDirExists(t, filepath.Join(project, paths.ClaudeDir))
}
