// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Input errors
	ErrInvalidCategory = "INVALID_CATEGORY"
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileExists     = "FILE_EXISTS"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Template errors
	ErrRenderFailed = "RENDER_FAILED"

	// Validation errors
	ErrValidationFailed   = "VALIDATION_FAILED"
	ErrFrontmatterInvalid = "FRONTMATTER_INVALID"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnTimestampFormat  = "TIMESTAMP_FORMAT"
	WarnMissingChangelog = "MISSING_CHANGELOG"
)
