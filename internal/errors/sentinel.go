package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrMissingAssetDirectory indicates the compiled-asset directory does not exist.
	ErrMissingAssetDirectory = errors.New("missing asset directory")

	// ErrMainBundleNotFound indicates no script qualified as the main bundle.
	ErrMainBundleNotFound = errors.New("main bundle not found")

	// ErrMalformedPanelData indicates panel-data.json could not be read or parsed.
	ErrMalformedPanelData = errors.New("malformed panel data")

	// ErrPlaceholderNotFound indicates the panel script carries no data placeholder.
	// Non-fatal: the run continues without embedding data.
	ErrPlaceholderNotFound = errors.New("placeholder not found")

	// ErrPatchTargetNotFound indicates a patch's detect string is absent.
	// Non-fatal: the patch is skipped.
	ErrPatchTargetNotFound = errors.New("patch target not found")

	// ErrNotFound indicates a required input file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes.
const (
	// ExitSuccess indicates the run completed and the main bundle was processed.
	ExitSuccess = 0

	// ExitGeneralError indicates a fatal condition aborted the run.
	ExitGeneralError = 1
)
