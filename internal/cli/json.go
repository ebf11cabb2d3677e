package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global JSON output flag
var jsonOutput bool

// errSilentFailure forces a nonzero exit after output has already been
// printed (a JSON error envelope or a validation report).
var errSilentFailure = errors.New("command failed")

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK       bool       `json:"ok"`
	Data     any        `json:"data,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
	Warnings []Warning  `json:"warnings,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// outputJSON outputs the response as JSON to stdout.
func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(data any) {
	outputJSON(Response{OK: true, Data: data})
}

// outputError outputs an error JSON response.
func outputError(code, message, suggestion string) {
	outputJSON(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	})
}

// isJSONOutput returns true if JSON output is enabled.
func isJSONOutput() bool {
	return jsonOutput
}

// failSilently marks the command as already reported and returns the
// sentinel that makes the process exit nonzero without extra output.
func failSilently(cmd *cobra.Command) error {
	cmd.SilenceErrors = true
	return errSilentFailure
}

// handleErrorMsg converts a detected failure into command output.
// In JSON mode it emits the error envelope and fails silently; in text mode
// it returns the error for Cobra to print.
func handleErrorMsg(cmd *cobra.Command, code, message, suggestion string) error {
	if jsonOutput {
		outputError(code, message, suggestion)
		return failSilently(cmd)
	}
	if suggestion != "" {
		return fmt.Errorf("%s\n%s", message, suggestion)
	}
	return errors.New(message)
}

// handleErr wraps a Go error for the active output mode.
func handleErr(cmd *cobra.Command, code string, err error, suggestion string) error {
	return handleErrorMsg(cmd, code, err.Error(), suggestion)
}
