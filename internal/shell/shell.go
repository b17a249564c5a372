// Package shell runs catalog install commands through the user's shell.
package shell

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/thoreinstein/skillset/internal/errors"
)

// DefaultShell interprets commands when none is configured.
const DefaultShell = "sh"

// Runner executes one shell command line to completion.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// Shell runs commands with `<Path> -c <command>`. Output is streamed and
// stdin is connected so install commands can prompt the user. There is no
// timeout; ctx cancellation kills the process.
type Shell struct {
	// Path is the shell executable. Empty means DefaultShell.
	Path string
	// Dir is the working directory. Empty means the current directory.
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// New returns a Shell bound to the process's standard streams.
func New(path, dir string, logger *slog.Logger) *Shell {
	return &Shell{
		Path:   path,
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run implements Runner.
func (s *Shell) Run(ctx context.Context, command string) error {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	shell := s.Path
	if shell == "" {
		shell = DefaultShell
	}

	log.Debug("running command", "cwd", s.Dir, "cmd", command)

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Dir = s.Dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		log.Debug("command failed", "cmd", command, "error", err)
		return errors.Wrapf(err, "running %q", command)
	}
	return nil
}
