package paths

import (
	"path/filepath"
	"strings"
)

const (
	sep       = string(filepath.Separator)
	parentDir = ".."
	curDir    = "."
)

// Relative returns the path of to relative to the directory from. Both
// arguments must be absolute; malformed input is not validated.
//
// When from and to name the same location the base name of to is returned,
// so the result is always usable as a link target pointing at a sibling. An
// empty or "." result falls back to the same base name.
func Relative(from, to string) string {
	from = trimTrailingSep(from)
	to = trimTrailingSep(to)

	if from == to {
		return filepath.Base(to)
	}

	fromParts := segments(from)
	toParts := segments(to)

	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}

	parts := make([]string, 0, len(fromParts)-common+len(toParts)-common)
	for range len(fromParts) - common {
		parts = append(parts, parentDir)
	}
	parts = append(parts, toParts[common:]...)

	rel := strings.Join(parts, sep)
	if rel == "" || rel == curDir {
		return filepath.Base(to)
	}
	return rel
}

func trimTrailingSep(p string) string {
	return strings.TrimRight(p, sep)
}

func segments(p string) []string {
	var out []string
	for s := range strings.SplitSeq(p, sep) {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
