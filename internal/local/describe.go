package local

import (
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/pkg/frontmatter"
)

// Describe returns the entry's catalog description, falling back to the
// description in the frontmatter of the file that would be linked (the
// agent markdown, or SKILL.md inside a skill folder). It returns "" when
// neither is available.
func (r *Resolver) Describe(entry catalog.LocalEntry) string {
	if entry.Description != "" {
		return entry.Description
	}

	res, err := r.Resolve(entry)
	if err != nil {
		return ""
	}

	file := res.Source
	if entry.Type != catalog.TypeAgent {
		file = filepath.Join(res.Source, SkillFile)
	}

	h, err := frontmatter.ReadHeader(file)
	if err != nil {
		return ""
	}
	return h.Description
}
