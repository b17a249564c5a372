// Package main is the entry point for the skillset installer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thoreinstein/skillset/cmd/skillset/commands"
	"github.com/thoreinstein/skillset/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()

	os.Exit(exitCode(err))
}

// exitCode reports err on stderr and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
		}
		return exitErr.Code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return errors.ExitUser
}
