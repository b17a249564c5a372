// Package local decides which file or directory a local catalog item links
// and where the link goes. It only queries the filesystem; linking is done
// by package symlink.
package local

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/paths"
)

// SkillFile is the preferred markdown file inside an agent folder.
const SkillFile = "SKILL.md"

const markdownExt = ".md"

// Sentinel errors for per-item resolution failures.
var (
	// ErrSourceNotFound indicates the declared source path does not exist.
	ErrSourceNotFound = errors.New("source path not found")

	// ErrNoMarkdown indicates an agent folder holds no markdown file.
	ErrNoMarkdown = errors.New("no .md file found")

	// ErrUnsupportedSource indicates an agent source that is neither a
	// regular file nor a directory.
	ErrUnsupportedSource = errors.New("source is neither a file nor a directory")
)

// Resolution is the concrete link to create for one local item.
type Resolution struct {
	// Source is the file or directory the link points at.
	Source string
	// Target is where the link is created.
	Target string
}

// Resolver maps local items to link locations inside one project.
type Resolver struct {
	ProjectDir string
}

// NewResolver returns a Resolver targeting projectDir.
func NewResolver(projectDir string) *Resolver {
	return &Resolver{ProjectDir: projectDir}
}

// Resolve returns the source and target for entry.
//
// Skills link their whole directory into .claude/skills. Agents link one
// markdown file into .claude/agents: the source itself when it is a file,
// otherwise SKILL.md, then <folder>.md, then the first *.md file in the
// folder.
func (r *Resolver) Resolve(entry catalog.LocalEntry) (Resolution, error) {
	info, err := os.Stat(entry.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{}, errors.Wrapf(ErrSourceNotFound, "%s", entry.Path)
		}
		return Resolution{}, errors.Wrapf(err, "inspecting %s", entry.Path)
	}

	if entry.Type != catalog.TypeAgent {
		return Resolution{
			Source: entry.Path,
			Target: filepath.Join(paths.SkillsDir(r.ProjectDir), filepath.Base(entry.Path)),
		}, nil
	}

	source := entry.Path
	switch {
	case info.Mode().IsRegular():
	case info.IsDir():
		source, err = findAgentFile(entry.Path)
		if err != nil {
			return Resolution{}, err
		}
	default:
		return Resolution{}, errors.Wrapf(ErrUnsupportedSource, "%s", entry.Path)
	}

	return Resolution{
		Source: source,
		Target: filepath.Join(paths.AgentsDir(r.ProjectDir), filepath.Base(source)),
	}, nil
}

// findAgentFile picks the markdown file that represents the agent folder dir.
func findAgentFile(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, SkillFile),
		filepath.Join(dir, filepath.Base(dir)+markdownExt),
	}
	for _, c := range candidates {
		if isFile(c) {
			return c, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", dir)
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), markdownExt) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if isFile(p) {
			return p, nil
		}
	}

	return "", errors.Wrapf(ErrNoMarkdown, "%s", dir)
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
