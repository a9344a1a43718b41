package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file names, directories, patch IDs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "injected" and "applied" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "updated" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File and patch status constants.
const (
	StatusInjected       = "injected"
	StatusUpdated        = "updated"
	StatusUnchanged      = "unchanged"
	StatusApplied        = "applied"
	StatusAlreadyApplied = "already-applied"
	StatusNotApplicable  = "not-applicable"
	StatusFailed         = "failed"
)

// StatusStyle returns the lipgloss style for a status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusInjected, StatusApplied:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUpdated:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged, StatusAlreadyApplied, StatusNotApplicable:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth keeps status words aligned across lines.
const minFileColumnWidth = 40

// FormatFileLine renders a target file with a right-aligned status.
//
// Format: <kind>:<name>  <status>
//
// The kind prefix is dim, the name is cyan, and the status uses StatusStyle.
// A dry run appends a dim "(dry run)" marker.
func FormatFileLine(kind, name, status string, dryRun bool) string {
	padding := minFileColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	line := StyleDim.Render(kind+":") + StyleNoun.Render(name) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
	if dryRun {
		line += " " + StyleDim.Render("(dry run)")
	}
	return line
}

// FormatPatchLine renders a patch identifier with its status.
func FormatPatchLine(id string, version int, status string) string {
	name := id + "@v" + strconv.Itoa(version)
	padding := minFileColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}
	return StyleDim.Render("p:") + StyleNoun.Render(name) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNotice renders a non-fatal notice: a yellow "!" and a dim code.
func FormatNotice(code, msg string) string {
	bang := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return bang + " " + msg + " " + StyleDim.Render("("+code+")")
}
