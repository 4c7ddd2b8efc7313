// Package logging holds the process-wide logger used by the wayfind
// commands. The search packages themselves never log.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so that command output
// on stdout stays machine-readable.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "wayfind"})

// SetLevel parses a level name ("debug", "info", "warn", "error", "fatal")
// and applies it to L.
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	L.SetLevel(lvl)

	return nil
}

// Debugf logs a debug-level formatted message on L.
func Debugf(format string, v ...any) { L.Debugf(format, v...) }

// Infof logs an info-level formatted message on L.
func Infof(format string, v ...any) { L.Infof(format, v...) }

// Warnf logs a warning-level formatted message on L.
func Warnf(format string, v ...any) { L.Warnf(format, v...) }

// Errorf logs an error-level formatted message on L.
func Errorf(format string, v ...any) { L.Errorf(format, v...) }
