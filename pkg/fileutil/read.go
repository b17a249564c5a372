// Package fileutil provides bounded file reads for catalog documents.
package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/skillset/internal/errors"
)

// MaxFileSize is the largest catalog document read (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded its read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFile reads path up to MaxFileSize.
func ReadFile(path string) ([]byte, error) {
	return ReadFileWithLimit(path, MaxFileSize)
}

// ReadFileWithLimit reads path and fails with ErrFileTooLarge when the
// content is longer than limit bytes.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast on the reported size; the LimitReader below still guards
	// files that grow while being read.
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit %d", path, info.Size(), limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds limit %d", path, limit)
	}

	return data, nil
}
