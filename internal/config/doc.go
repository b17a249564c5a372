// Package config loads the installer's settings using Viper.
//
// Settings come from, in order of precedence, command-line flags bound by
// the entry command, SKILLSET_* environment variables, an optional
// skillset.yaml in the current directory or in $XDG_CONFIG_HOME/skillset,
// and built-in defaults:
//
//	debug: false
//	installer_dir: ""        # directory of the running executable
//	shell: sh
//	catalog:
//	  skills: external.json
//	  mcp: mcp.json
//	  locals: local.json
//
// Nested keys map to environment variables with dots replaced by
// underscores, e.g. SKILLSET_CATALOG_LOCALS.
package config
