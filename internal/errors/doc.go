// Package errors provides error handling conventions for the skillset CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// the rest of the module has a single import for creating, wrapping and
// inspecting errors, and it defines an ExitError type for CLI exit code
// handling.
//
// # Wrapping
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrapf(err, "reading %s", path)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): completed, exited from the menu, or cancelled
//   - ExitUser (1): no usable skills catalog or any unhandled failure
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. The entry point unwraps it with [As] to choose the process
// exit status:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
