// Package commands implements the skillset command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/skillset/cmd"
	"github.com/thoreinstein/skillset/internal/cli/prompt"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
)

// debugFlag holds the value of the --debug flag.
var debugFlag bool

// configFile holds the value of the --config flag.
var configFile string

// traceFile holds the path given to --trace-file.
var traceFile string

// cfg is the configuration loaded before any command runs.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"trace catalog loading, commands and links to stdout")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./skillset.yaml, then $XDG_CONFIG_HOME/skillset/skillset.yaml)")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "",
		"also write log records as JSON to this file")
	_ = viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("skillset version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "skillset",
	Short: "Interactively install skills and link local agents into a project",
	Long: `skillset presents a catalog of skills and local items and installs the
ones you pick.

Skills come from external.json and mcp.json and are installed by running
their commands through the shell. Local items come from local.json and
are linked into .claude/agents or .claude/skills of the current
directory with relative symlinks.

Each catalog is read from the current directory first, then from the
installer directory.`,
	Example: `  # Start the installer
  skillset

  # Trace catalog sources, commands and link targets
  skillset --debug`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configLoadErr != nil {
			var exitErr *errors.ExitError
			if errors.As(configLoadErr, &exitErr) {
				return exitErr
			}
			return errors.NewConfigError(configLoadErr)
		}
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "determining working directory"), "")
		}

		env := environment{
			cfg:     cfg,
			workDir: workDir,
			in:      cmd.InOrStdin(),
			out:     cmd.OutOrStdout(),
		}
		env.prompter = newPrompter(env.in, env.out)
		return runInstaller(cmd.Context(), env)
	},
}

// setupLogging configures the default logger from the debug setting.
// Debug traces go to stdout alongside the screens; otherwise only warnings
// and errors are logged, to stderr.
func setupLogging(cmd *cobra.Command) error {
	debug := viper.GetBool(config.KeyDebug)

	out := cmd.ErrOrStderr()
	if debug {
		out = cmd.OutOrStdout()
	}

	logCfg := logging.Config{
		Level:  logging.LevelFor(debug),
		Format: logging.FormatText,
		Output: out,
	}

	if traceFile != "" {
		f, err := os.OpenFile(traceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening trace file"), "Check the --trace-file path")
		}
		cobra.OnFinalize(func() { _ = f.Close() })
		logCfg.Trace = f
	}

	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// newPrompter returns the fuzzy finder for terminals and the numbered
// line prompter for pipes and redirected input.
func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if logging.Interactive(in, out) {
		return prompt.NewFinder()
	}
	return prompt.NewLineWithIO(in, out)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// printCancelled reports a user abort.
func printCancelled(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Operation cancelled.")
}
