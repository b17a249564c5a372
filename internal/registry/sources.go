package registry

import (
	"slices"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/paths"
)

// SkillSource produces remote skill entries from one catalog document.
type SkillSource interface {
	// File is the document name looked up in both tiers.
	File() string
	// Entries loads and normalizes the document and reports which file
	// served it.
	Entries(l *Loader) ([]catalog.Entry, Origin, error)
}

type skillsDocument struct {
	Skills []catalog.Entry `json:"skills" yaml:"skills" toml:"skills"`
}

type mcpDocument struct {
	MCPServers map[string]catalog.MCPServer `json:"mcpServers" yaml:"mcpServers" toml:"mcpServers"`
}

type localsDocument struct {
	Locals []catalog.LocalEntry `json:"locals" yaml:"locals" toml:"locals"`
}

// SkillsSource reads a document with a top-level skills list.
type SkillsSource struct {
	Name string
}

// File implements SkillSource.
func (s SkillsSource) File() string { return s.Name }

// Entries implements SkillSource.
func (s SkillsSource) Entries(l *Loader) ([]catalog.Entry, Origin, error) {
	doc, origin, err := Load[skillsDocument](l, s.Name, s.Name)
	if err != nil {
		return nil, Origin{}, err
	}
	return doc.Skills, origin, nil
}

// MCPSource reads a document with a top-level mcpServers map and projects
// each server into an entry named after its key. Entries are ordered by
// server name.
type MCPSource struct {
	Name string
}

// File implements SkillSource.
func (s MCPSource) File() string { return s.Name }

// Entries implements SkillSource.
func (s MCPSource) Entries(l *Loader) ([]catalog.Entry, Origin, error) {
	doc, origin, err := Load[mcpDocument](l, s.Name, s.Name)
	if err != nil {
		return nil, Origin{}, err
	}

	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, doc.MCPServers[name].Entry(name))
	}
	return entries, origin, nil
}

// LoadSkills concatenates the entries of every source in order. Sources
// that fail contribute nothing; Load has already warned about them.
func LoadSkills(l *Loader, sources ...SkillSource) []catalog.Entry {
	var all []catalog.Entry
	for _, src := range sources {
		entries, origin, err := src.Entries(l)
		if err != nil {
			continue
		}
		l.logger().Debug("skill source loaded",
			"file", src.File(),
			"tier", origin.Tier.String(),
			"path", origin.Path,
			"entries", len(entries))
		all = append(all, entries...)
	}
	return all
}

// LoadLocals reads the locals document and makes every path absolute
// against the installer directory.
func LoadLocals(l *Loader, name string) []catalog.LocalEntry {
	doc, origin, err := Load[localsDocument](l, name, name)
	if err != nil {
		return nil
	}
	l.logger().Debug("locals loaded",
		"file", name,
		"tier", origin.Tier.String(),
		"path", origin.Path,
		"entries", len(doc.Locals))

	locals := make([]catalog.LocalEntry, 0, len(doc.Locals))
	for _, e := range doc.Locals {
		e.Path = paths.Absolute(l.InstallDir, e.Path)
		locals = append(locals, e)
	}
	if len(locals) == 0 {
		l.logger().Warn("no locals found", "file", name)
	}
	return locals
}
