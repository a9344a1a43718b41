// Package patch applies exact-match source fixes to compiled script bundles.
package patch

import (
	"strings"
)

// Descriptor is one guarded literal replacement.
type Descriptor struct {
	// ID names the fix. Stable across versions.
	ID string `json:"id"`

	// Version increments whenever Detect or Replace changes.
	Version int `json:"version"`

	// Description explains the upstream defect.
	Description string `json:"description"`

	// Detect is the exact text that must occur in the bundle.
	Detect string `json:"detect"`

	// Replace is the text substituted for the first occurrence of Detect.
	Replace string `json:"replace"`
}

// Status classifies the outcome of applying one descriptor.
type Status string

const (
	// StatusApplied means Detect was found and replaced.
	StatusApplied Status = "applied"

	// StatusAlreadyApplied means Detect is absent but Replace is present,
	// which is what a previous run leaves behind.
	StatusAlreadyApplied Status = "already-applied"

	// StatusNotApplicable means neither string occurs; the bundle has a
	// different shape than the one the fix was written for.
	StatusNotApplicable Status = "not-applicable"
)

// Result records what happened to one descriptor.
type Result struct {
	ID      string `json:"id" yaml:"id"`
	Version int    `json:"version" yaml:"version"`
	Status  Status `json:"status" yaml:"status"`
}

// Patch replaces the first occurrence of d.Detect with d.Replace.
// When d.Detect does not occur verbatim, text is returned unchanged and
// applied is false. No partial or fuzzy matching is attempted.
func Patch(text string, d Descriptor) (result string, applied bool) {
	if d.Detect == "" || !strings.Contains(text, d.Detect) {
		return text, false
	}
	return strings.Replace(text, d.Detect, d.Replace, 1), true
}

// Apply runs Patch and classifies the outcome.
func Apply(text string, d Descriptor) (string, Result) {
	res := Result{ID: d.ID, Version: d.Version}

	out, applied := Patch(text, d)
	switch {
	case applied:
		res.Status = StatusApplied
	case d.Replace != "" && strings.Contains(text, d.Replace):
		res.Status = StatusAlreadyApplied
	default:
		res.Status = StatusNotApplicable
	}
	return out, res
}

// ApplyAll applies descriptors in order, each to the output of the previous.
func ApplyAll(text string, ds []Descriptor) (string, []Result) {
	results := make([]Result, 0, len(ds))
	for _, d := range ds {
		var r Result
		text, r = Apply(text, d)
		results = append(results, r)
	}
	return text, results
}
