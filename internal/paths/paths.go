package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ClaudeDir is the project-relative directory that receives linked items.
const ClaudeDir = ".claude"

// Subdirectories of ClaudeDir per local item type.
const (
	agentsSubdir = "agents"
	skillsSubdir = "skills"
)

// DefaultDirPerm is the permission for directories created to hold links.
const DefaultDirPerm = 0o755

// ErrExecutableNotFound indicates the running binary's location could not be determined.
var ErrExecutableNotFound = errors.New("executable path not found")

// AgentsDir returns <projectRoot>/.claude/agents.
func AgentsDir(projectRoot string) string {
	return filepath.Join(projectRoot, ClaudeDir, agentsSubdir)
}

// SkillsDir returns <projectRoot>/.claude/skills.
func SkillsDir(projectRoot string) string {
	return filepath.Join(projectRoot, ClaudeDir, skillsSubdir)
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved. Built-in catalogs are looked up there.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(ErrExecutableNotFound, err.Error())
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Absolute returns p unchanged when it is already absolute, otherwise p
// joined to base.
func Absolute(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
