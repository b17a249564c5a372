package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyValue indicates a required field is blank.
	ErrEmptyValue = errors.New("value must not be empty")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFileName indicates a catalog name contains a directory part.
	ErrNotFileName = errors.New("must be a file name, not a path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if strings.TrimSpace(cfg.Shell) == "" {
		errs = append(errs, &FieldError{Field: KeyShell, Err: ErrEmptyValue})
	}

	if err := validatePath(cfg.InstallerDir); err != nil {
		errs = append(errs, &FieldError{Field: KeyInstallerDir, Value: cfg.InstallerDir, Err: err})
	}

	catalogs := []struct {
		key  string
		name string
	}{
		{KeyCatalogSkill, cfg.Catalog.Skills},
		{KeyCatalogMCP, cfg.Catalog.MCP},
		{KeyCatalogLocal, cfg.Catalog.Locals},
	}
	for _, c := range catalogs {
		if err := validateFileName(c.name); err != nil {
			errs = append(errs, &FieldError{Field: c.key, Value: c.name, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// validateFileName requires a bare file name; catalogs are looked up in
// two directories so a path would defeat the lookup order.
func validateFileName(name string) error {
	switch {
	case name == "":
		return ErrEmptyValue
	case strings.ContainsRune(name, '\x00'):
		return ErrInvalidPath
	case filepath.Base(name) != name || name == "." || name == "..":
		return ErrNotFileName
	}
	return nil
}

// FieldError represents an error for a specific configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
