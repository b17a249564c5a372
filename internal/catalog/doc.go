// Package catalog defines the installable items skillset offers and the
// immutable Catalog that groups them for selection.
//
// Remote skills ([Entry]) are installed by running shell commands. Local
// items ([LocalEntry]) are linked into the project with relative symlinks.
// Both come from catalog documents whose types carry json, yaml and toml
// tags so any supported document format decodes into them.
package catalog
