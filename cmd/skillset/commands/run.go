package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillset/internal/catalog"
	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/install"
	"github.com/thoreinstein/skillset/internal/local"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/internal/registry"
	"github.com/thoreinstein/skillset/internal/shell"
	"github.com/thoreinstein/skillset/internal/symlink"
	"github.com/thoreinstein/skillset/internal/ui"
)

// environment is everything one installer run depends on.
type environment struct {
	cfg      *config.Config
	workDir  string
	in       io.Reader
	out      io.Writer
	prompter prompt.Prompter
}

// runInstaller loads the catalog and runs one interactive session.
func runInstaller(ctx context.Context, env environment) error {
	logger := logging.FromContext(ctx)

	installDir, err := installerDir(env.cfg)
	if err != nil {
		return errors.NewUserError(err, "Set installer_dir in skillset.yaml or SKILLSET_INSTALLER_DIR")
	}

	logger.Debug("installer directory", "dir", installDir)
	logger.Debug("working directory", "dir", env.workDir)

	loader := registry.NewLoader(env.workDir, installDir, logger)
	cat, err := registry.LoadCatalog(loader, catalogFiles(env.cfg))
	if err != nil {
		if errors.Is(err, registry.ErrNoSkills) {
			return errors.NewUserError(err,
				"Add an external.json or mcp.json to the current directory or to "+installDir)
		}
		return errors.NewUserError(err, "")
	}
	logger.Debug("catalog ready", "skills", len(cat.Skills()), "locals", len(cat.Locals()))

	session := newSession(cat, env, logger)
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
			printCancelled(env.out)
			return nil
		}
		return errors.NewUserError(err, "")
	}
	return nil
}

func newSession(cat *catalog.Catalog, env environment, logger *slog.Logger) *install.Session {
	printer := ui.NewPrinter(env.out)

	sh := shell.New(shellPath(env.cfg), env.workDir, logger)
	// Commands only inherit a terminal stdin; with piped input the child
	// would consume answers meant for later prompts.
	sh.Stdin = nil
	if f, ok := env.in.(*os.File); ok && logging.IsTTY(f) {
		sh.Stdin = f
	}
	sh.Stdout = env.out

	return &install.Session{
		Catalog:  cat,
		Prompter: env.prompter,
		Printer:  printer,
		Remote: &install.Remote{
			Runner:  sh,
			Printer: printer,
			Logger:  logger,
		},
		Local: &install.Local{
			Resolver: local.NewResolver(env.workDir),
			Linker:   symlink.NewManager(logger),
			Printer:  printer,
			Logger:   logger,
		},
		Logger: logger,
	}
}

// installerDir returns the configured installer directory as an absolute
// path, defaulting to the directory of the running executable.
func installerDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.InstallerDir != "" {
		dir, err := filepath.Abs(cfg.InstallerDir)
		if err != nil {
			return "", errors.Wrapf(err, "resolving installer directory %q", cfg.InstallerDir)
		}
		return dir, nil
	}
	return paths.ExecutableDir()
}

func catalogFiles(cfg *config.Config) registry.Files {
	files := registry.DefaultFiles()
	if cfg == nil {
		return files
	}
	if cfg.Catalog.Skills != "" {
		files.Skills = cfg.Catalog.Skills
	}
	if cfg.Catalog.MCP != "" {
		files.MCP = cfg.Catalog.MCP
	}
	if cfg.Catalog.Locals != "" {
		files.Locals = cfg.Catalog.Locals
	}
	return files
}

func shellPath(cfg *config.Config) string {
	if cfg == nil || cfg.Shell == "" {
		return shell.DefaultShell
	}
	return cfg.Shell
}
