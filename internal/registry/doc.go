// Package registry loads the catalog documents skillset installs from.
//
// Every document is looked up in two tiers: the working directory the
// installer was started from, then the installer's own directory. The first
// tier that yields a parseable document wins outright; tiers are never
// merged.
//
// Two source adapters produce remote skills: [SkillsSource] reads a plain
// skills list and [MCPSource] projects an mcpServers map into entries. Their
// results are concatenated. Local items come from a third document whose
// relative paths are anchored at the installer directory.
//
// Documents are decoded by file extension: JSON (comments and trailing
// commas allowed), YAML or TOML.
package registry
