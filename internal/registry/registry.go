package registry

import (
	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrNoSkills indicates the merged skills set is empty.
var ErrNoSkills = errors.New("no skills found")

// Default catalog document names.
const (
	DefaultSkillsFile = "external.json"
	DefaultMCPFile    = "mcp.json"
	DefaultLocalsFile = "local.json"
)

// Files names the three catalog documents.
type Files struct {
	Skills string
	MCP    string
	Locals string
}

// DefaultFiles returns the standard document names.
func DefaultFiles() Files {
	return Files{
		Skills: DefaultSkillsFile,
		MCP:    DefaultMCPFile,
		Locals: DefaultLocalsFile,
	}
}

// LoadCatalog loads skills from the skills and MCP documents and locals from
// the locals document. It fails with ErrNoSkills when no skill was found;
// missing locals are tolerated.
func LoadCatalog(l *Loader, files Files) (*catalog.Catalog, error) {
	skills := LoadSkills(l, SkillsSource{Name: files.Skills}, MCPSource{Name: files.MCP})
	l.logger().Debug("skills loaded", "total", len(skills))
	if len(skills) == 0 {
		return nil, errors.Wrapf(ErrNoSkills, "in %s or %s", files.Skills, files.MCP)
	}

	locals := LoadLocals(l, files.Locals)
	l.logger().Debug("locals loaded", "total", len(locals))

	return catalog.New(skills, locals, l.logger()), nil
}
