// Package paths owns path arithmetic and directory layout for skillset.
//
// [Relative] computes the portable relative path stored inside every symlink
// the installer creates, so a project tree stays valid after it is moved or
// copied.
//
// # Project Layout
//
// Local items are linked under the project's Claude configuration directory:
//
//	| Type  | Target directory            |
//	|-------|-----------------------------|
//	| agent | <project>/.claude/agents/   |
//	| skill | <project>/.claude/skills/   |
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the user configuration directory
// searched by the config layer (~/.config/skillset on Linux).
package paths
