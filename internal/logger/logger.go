// Package logger provides verbose logging for faqdesk.
// When verbose mode is enabled via the --verbose flag, messages are printed
// to stderr so users can follow how a question was routed: which stage
// answered, the scores involved, and any swallowed storage failures.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing and for the TUI, which owns the terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(l level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+string(l)+"] "+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(levelDebug, format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(levelInfo, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(levelWarn, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Score logs a threshold decision for a routing stage.
func Score(stage string, score, threshold float64, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	write(levelDebug, "%s: score=%.3f threshold=%.2f %s", stage, score, threshold, outcome)
}

// Timed logs how long an operation took when the returned func is called.
//
//	defer logger.Timed("remote answer")()
func Timed(name string) func() {
	start := now()
	return func() {
		write(levelDebug, "%s took %s", name, now().Sub(start).Round(time.Millisecond))
	}
}
