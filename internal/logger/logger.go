package logger

import (
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for the different log levels using fatih/color.
// Each behaves like fmt.Printf. Info, Warn and Debug write to stdout, Error writes to stderr
// so that failures stay visible when the converter's output is piped or discarded.

// Info logs progress messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta, used when a step silently changed nothing.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

var errorf = color.New(color.FgRed).FprintfFunc()

// Error logs error messages in red color to stderr.
func Error(format string, a ...any) {
	errorf(os.Stderr, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts out disabled so packages can log before Init has been called (tests do).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan-colored messages; otherwise it silently drops them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
