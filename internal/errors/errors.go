// Package errors terminates failed CLI runs: the failure is logged, printed
// to stderr with a uniform "Error:" prefix, and the process exits non-zero.
package errors

import (
	"fmt"
	"os"

	"github.com/example/frontdesk/internal/logger"
)

// Fatal logs err and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Fatalf is Fatal for a formatted message.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}
