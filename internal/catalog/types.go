package catalog

// DefaultGroup is the group assigned to skills that do not declare one.
const DefaultGroup = "other"

// Entry is a remote skill installed by running shell commands.
type Entry struct {
	// Name is the unique key of the skill.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Description is shown next to the name during selection.
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Group is a free-form category. Empty means DefaultGroup.
	Group string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`

	// Version is optional and only displayed.
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`

	// URL is optional and only displayed. MCP servers carry it in their meta block.
	URL string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`

	// Commands holds the shell commands that install the skill.
	Commands Commands `json:"commands" yaml:"commands" toml:"commands"`
}

// Commands is the command block of a remote skill.
type Commands struct {
	// Add installs the skill. Its exit status decides success.
	Add string `json:"add" yaml:"add" toml:"add"`

	// Dependencies are best-effort prerequisites run before Add.
	Dependencies Dependencies `json:"dependencies,omitzero" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

// Dependencies lists prerequisite commands.
type Dependencies struct {
	// Requires are run in order before Add; failures are only warnings.
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty" toml:"requires,omitempty"`
}

// GroupName returns the entry's group, or DefaultGroup when unset.
func (e Entry) GroupName() string {
	if e.Group == "" {
		return DefaultGroup
	}
	return e.Group
}

// Title is the label shown in selection lists.
func (e Entry) Title() string {
	if e.Version == "" {
		return e.Name
	}
	return e.Name + " (" + e.Version + ")"
}

// MCPServer is one value of an mcpServers map.
type MCPServer struct {
	Add  string  `json:"add" yaml:"add" toml:"add"`
	Meta MCPMeta `json:"meta,omitzero" yaml:"meta,omitempty" toml:"meta,omitempty"`
}

// MCPMeta is the optional display metadata of an MCP server.
type MCPMeta struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Group       string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// Entry projects the server into a catalog entry named name.
func (s MCPServer) Entry(name string) Entry {
	group := s.Meta.Group
	if group == "" {
		group = DefaultGroup
	}
	return Entry{
		Name:        name,
		Description: s.Meta.Description,
		Group:       group,
		Version:     s.Meta.Version,
		URL:         s.Meta.URL,
		Commands:    Commands{Add: s.Add},
	}
}
