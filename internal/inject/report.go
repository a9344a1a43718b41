package inject

import (
	"github.com/openclaw-cn/panel-inject/internal/assets"
	"github.com/openclaw-cn/panel-inject/internal/patch"
)

// Outcome describes what a run did to one file.
type Outcome string

const (
	// OutcomeUnchanged means the computed content was byte-identical.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeInjected means the marker was absent before and present after.
	OutcomeInjected Outcome = "injected"

	// OutcomeUpdated means the file changed and the marker was already present.
	OutcomeUpdated Outcome = "updated"
)

// FileKind distinguishes stylesheet and script targets.
type FileKind string

const (
	KindStylesheet FileKind = "css"
	KindScript     FileKind = "js"
)

// FileResult is the per-file entry of a Report.
type FileResult struct {
	Name    string   `json:"name" yaml:"name"`
	Kind    FileKind `json:"kind" yaml:"kind"`
	Outcome Outcome  `json:"outcome" yaml:"outcome"`
	Bytes   int      `json:"bytes" yaml:"bytes"`
}

// NoticeCode identifies a non-fatal condition.
type NoticeCode string

const (
	// NoticePlaceholderNotFound means panel data was loaded but the panel
	// script has no placeholder region, so the data was not embedded.
	NoticePlaceholderNotFound NoticeCode = "placeholder-not-found"

	// NoticePatchTargetNotFound means a patch's detect string is absent.
	NoticePatchTargetNotFound NoticeCode = "patch-target-not-found"

	// NoticeStyleInlined means no stylesheet exists and the panel CSS was
	// folded into the script payload.
	NoticeStyleInlined NoticeCode = "style-inlined"
)

// Notice is an informational, non-fatal report entry.
//
// Err carries the matching sentinel from internal/errors for conditions that
// have one, so callers can test notices with errors.Is.
type Notice struct {
	Code    NoticeCode `json:"code" yaml:"code"`
	Message string     `json:"message" yaml:"message"`
	Err     error      `json:"-" yaml:"-"`
}

// Report is the result of one run.
type Report struct {
	AssetDir     string         `json:"assetDir" yaml:"assetDir"`
	MainBundle   assets.Entry   `json:"mainBundle" yaml:"mainBundle"`
	StyleInlined bool           `json:"styleInlined" yaml:"styleInlined"`
	DataEmbedded bool           `json:"dataEmbedded" yaml:"dataEmbedded"`
	DryRun       bool           `json:"dryRun" yaml:"dryRun"`
	Files        []FileResult   `json:"files" yaml:"files"`
	Patches      []patch.Result `json:"patches" yaml:"patches"`
	Notices      []Notice       `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// ChangedFiles returns the number of files that were (or in a dry run, would
// be) written.
func (r *Report) ChangedFiles() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome != OutcomeUnchanged {
			n++
		}
	}
	return n
}

// Changed reports whether any file was (or in a dry run, would be) written.
func (r *Report) Changed() bool {
	return r.ChangedFiles() > 0
}

func (r *Report) notice(code NoticeCode, err error, msg string) {
	r.Notices = append(r.Notices, Notice{Code: code, Message: msg, Err: err})
}
