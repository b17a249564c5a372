package catalog

import (
	"log/slog"
	"slices"
)

// Catalog is the merged, read-only set of skills and locals for one run.
// Names are unique within each set.
type Catalog struct {
	skills []Entry
	locals []LocalEntry
}

// New builds a Catalog. Skills without a group get DefaultGroup and locals
// without a valid type become skills. When two items share a name the later
// one replaces the earlier one in place; each replacement is logged as a
// warning.
func New(skills []Entry, locals []LocalEntry, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{}

	seen := make(map[string]int, len(skills))
	for _, e := range skills {
		e.Group = e.GroupName()
		if i, dup := seen[e.Name]; dup {
			logger.Warn("duplicate skill name, later entry wins", "name", e.Name)
			c.skills[i] = e
			continue
		}
		seen[e.Name] = len(c.skills)
		c.skills = append(c.skills, e)
	}

	seen = make(map[string]int, len(locals))
	for _, l := range locals {
		switch {
		case l.Type == "":
			l.Type = TypeSkill
		case !l.Type.Valid():
			logger.Warn("unknown local type, treating as skill", "name", l.Name, "type", l.Type)
			l.Type = TypeSkill
		}
		if i, dup := seen[l.Name]; dup {
			logger.Warn("duplicate local name, later entry wins", "name", l.Name)
			c.locals[i] = l
			continue
		}
		seen[l.Name] = len(c.locals)
		c.locals = append(c.locals, l)
	}

	return c
}

// Skills returns a copy of all skills in load order.
func (c *Catalog) Skills() []Entry {
	return slices.Clone(c.skills)
}

// Locals returns a copy of all locals in load order.
func (c *Catalog) Locals() []LocalEntry {
	return slices.Clone(c.locals)
}

// Groups returns the sorted, unique skill groups.
func (c *Catalog) Groups() []string {
	var groups []string
	for _, e := range c.skills {
		groups = append(groups, e.Group)
	}
	slices.Sort(groups)
	return slices.Compact(groups)
}

// SkillsInGroups returns the skills whose group is in groups, in load order.
func (c *Catalog) SkillsInGroups(groups []string) []Entry {
	var out []Entry
	for _, e := range c.skills {
		if slices.Contains(groups, e.Group) {
			out = append(out, e)
		}
	}
	return out
}

// LocalTypes returns the sorted, unique local types.
func (c *Catalog) LocalTypes() []LocalType {
	var types []LocalType
	for _, l := range c.locals {
		types = append(types, l.Type)
	}
	slices.Sort(types)
	return slices.Compact(types)
}

// LocalsOfTypes returns the locals whose type is in types, in load order.
func (c *Catalog) LocalsOfTypes(types []LocalType) []LocalEntry {
	var out []LocalEntry
	for _, l := range c.locals {
		if slices.Contains(types, l.Type) {
			out = append(out, l)
		}
	}
	return out
}
