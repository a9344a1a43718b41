// Package errors provides sentinel and structured errors for panel-inject.
package errors

import (
	"errors"
	"strings"
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewMissingAssetDirectoryError reports an absent compiled-asset directory.
func NewMissingAssetDirectoryError(location string) error {
	return &DetailError{
		Type:     "missing asset directory",
		Message:  "the dashboard asset directory does not exist",
		Location: location,
		Hint:     "Build the dashboard first, or pass the repository root that contains dist/control-ui.",
		Cause:    ErrMissingAssetDirectory,
	}
}

// NewMainBundleNotFoundError reports that no script qualified as the main bundle.
func NewMainBundleNotFoundError(location string, scripts []string) error {
	ctx := map[string]string{}
	if len(scripts) > 0 {
		ctx["Scripts"] = strings.Join(scripts, ", ")
	} else {
		ctx["Scripts"] = "(none)"
	}
	return &DetailError{
		Type:     "main bundle not found",
		Message:  "no script in the asset directory looks like the entry bundle",
		Location: location,
		Context:  ctx,
		Hint:     "Expected a name containing index-, index.js, .bundle.js or main.",
		Cause:    ErrMainBundleNotFound,
	}
}

// NewMalformedPanelDataError reports an unreadable or unparsable data file.
func NewMalformedPanelDataError(location string, cause error) error {
	return &DetailError{
		Type:     "malformed panel data",
		Message:  cause.Error(),
		Location: location,
		Hint:     "panel-data.json must contain a single valid JSON value.",
		Cause:    errors.Join(ErrMalformedPanelData, cause),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed reports whether the command layer already displayed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}
