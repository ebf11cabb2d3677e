// Package ui provides terminal output helpers for the ssot CLI.
package ui

import (
	"fmt"
	"strings"
)

// Status symbols used in validation reports and confirmations.
const (
	SymbolSuccess = "✅"
	SymbolError   = "❌"
	SymbolWarning = "⚠️"
)

// SeparatorWidth is the width of report separator lines.
const SeparatorWidth = 60

// Separator returns the report separator line.
func Separator() string {
	return strings.Repeat("=", SeparatorWidth)
}

// Successf returns a formatted success message with its symbol.
func Successf(format string, args ...any) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, fmt.Sprintf(format, args...))
}

// Errorf returns a formatted error message with its symbol.
func Errorf(format string, args ...any) string {
	return fmt.Sprintf("%s %s", SymbolError, fmt.Sprintf(format, args...))
}

// ErrorsHeader returns the header line for the error block of a report.
func ErrorsHeader() string {
	return fmt.Sprintf("%s ERRORS:", SymbolError)
}

// WarningsHeader returns the header line for the warning block of a report.
func WarningsHeader() string {
	return fmt.Sprintf("%s  WARNINGS:", SymbolWarning)
}

// Bullet returns a report bullet line.
func Bullet(msg string) string {
	return fmt.Sprintf("  - %s", msg)
}

// FilePath returns an accent-styled file path.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}
