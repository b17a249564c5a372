package registry

import (
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/errors"
)

// ErrNoDocument indicates neither tier produced a usable document.
var ErrNoDocument = errors.New("catalog document not found")

// Tier identifies where a document was found.
type Tier int

const (
	// TierLocal is the working directory.
	TierLocal Tier = iota
	// TierBuiltin is the installer directory.
	TierBuiltin
)

func (t Tier) String() string {
	if t == TierLocal {
		return "local"
	}
	return "builtin"
}

// Origin records which file a document was decoded from.
type Origin struct {
	Tier Tier
	Path string
}

// Loader resolves catalog documents against the two lookup tiers.
type Loader struct {
	// WorkDir is searched first, silently.
	WorkDir string
	// InstallDir is searched second; failures are logged as warnings.
	InstallDir string
	Logger     *slog.Logger
}

// NewLoader returns a Loader for the given directories.
func NewLoader(workDir, installDir string, logger *slog.Logger) *Loader {
	return &Loader{WorkDir: workDir, InstallDir: installDir, Logger: logger}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// Load decodes the first usable document of type T, trying
// <WorkDir>/<localName> and then <InstallDir>/<builtinName>. A missing or
// malformed local document is ignored. When the builtin document fails too
// a warning is logged and the returned error matches ErrNoDocument.
func Load[T any](l *Loader, localName, builtinName string) (T, Origin, error) {
	log := l.logger()

	localPath := filepath.Join(l.WorkDir, localName)
	var doc T
	err := decodeFile(localPath, &doc)
	if err == nil {
		log.Debug("catalog loaded", "tier", TierLocal, "path", localPath)
		return doc, Origin{Tier: TierLocal, Path: localPath}, nil
	}
	log.Debug("local catalog unusable", "path", localPath, "error", err)

	builtinPath := filepath.Join(l.InstallDir, builtinName)
	var fallback T
	if err := decodeFile(builtinPath, &fallback); err != nil {
		log.Warn("could not load catalog", "file", builtinName, "error", err)
		var zero T
		return zero, Origin{}, errors.Mark(errors.Wrapf(err, "loading %s", builtinName), ErrNoDocument)
	}

	log.Debug("catalog loaded", "tier", TierBuiltin, "path", builtinPath)
	return fallback, Origin{Tier: TierBuiltin, Path: builtinPath}, nil
}
