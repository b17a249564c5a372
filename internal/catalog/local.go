package catalog

// LocalType selects where a local item is linked.
type LocalType string

const (
	// TypeAgent links a single markdown file into .claude/agents.
	TypeAgent LocalType = "agent"

	// TypeSkill links a whole directory into .claude/skills.
	TypeSkill LocalType = "skill"
)

// Valid reports whether t is a known type.
func (t LocalType) Valid() bool {
	return t == TypeAgent || t == TypeSkill
}

// Label describes the type and its target folder for selection lists.
func (t LocalType) Label() string {
	if t == TypeAgent {
		return "Agents (.claude/agents/ folder)"
	}
	return "Skills (.claude/skills/ folder)"
}

// LocalEntry is a filesystem item linked into the project.
type LocalEntry struct {
	// Name is the unique key of the item.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Type is agent or skill. Empty means skill.
	Type LocalType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// Description is shown during selection.
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Path is the source file or directory. It is absolute once loaded.
	Path string `json:"path" yaml:"path" toml:"path"`
}

// Title is the label shown in selection lists.
func (l LocalEntry) Title() string {
	return l.Name + " (" + string(l.Type) + ")"
}
