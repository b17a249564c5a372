// Package frontmatter reads the YAML header of agent and skill markdown
// files.
//
// A header is delimited by lines containing only "---" at the very start
// of the file:
//
//	---
//	name: reviewer
//	description: Reviews pull requests for style and correctness
//	---
//
//	# Reviewer
//
// Only the header is consumed; the markdown body is never read.
package frontmatter
