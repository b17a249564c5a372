// Package logging provides structured logging for the skillset CLI using slog.
//
// Normal runs log warnings and errors to stderr. The --debug flag lowers the
// level to debug and sends the trace (working directory, catalog sources,
// commands executed, resolved link paths) to stdout.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFor(debug),
//		Format: logging.FormatText,
//		Output: os.Stdout,
//	})
//	logger.Debug("catalog loaded", "skills", 12)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
