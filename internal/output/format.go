package output

import "strings"

// OutputFormat specifies how a run report is written.
type OutputFormat string

const (
	// FormatText renders styled log lines.
	FormatText OutputFormat = "text"

	// FormatJSON writes the report as JSON to stdout.
	FormatJSON OutputFormat = "json"

	// FormatYAML writes the report as YAML to stdout.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into an OutputFormat.
// The second return value is false for unrecognized input.
func ParseFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "json", "yaml"}
}
