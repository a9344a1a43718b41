// Package watch re-runs an action when files in a directory change.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/openclaw-cn/panel-inject/internal/output"
)

// DefaultDebounce batches the burst of events an editor emits on save.
const DefaultDebounce = 300 * time.Millisecond

// Options configures Run.
type Options struct {
	// Dir is the directory to watch. Subdirectories are not watched.
	Dir string

	// Names restricts events to these base names. Empty means every file.
	Names []string

	// Debounce is the quiet period after the last event before OnChange
	// runs. Zero means DefaultDebounce.
	Debounce time.Duration

	// OnChange runs once per batch of events, on the Run goroutine.
	// An error is logged and watching continues.
	OnChange func() error
}

// Run watches opts.Dir until ctx is done. It returns nil on cancellation.
func Run(ctx context.Context, opts Options) error {
	if opts.OnChange == nil {
		return errors.New("watch: no change handler")
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(opts.Dir); err != nil {
		return err
	}
	output.Info("watching for changes", "dir", opts.Dir)

	wanted := make(map[string]bool, len(opts.Names))
	for _, n := range opts.Names {
		wanted[n] = true
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event, wanted) {
				continue
			}
			output.Debug("change detected", "file", filepath.Base(event.Name), "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			output.Warn("watch error", "error", err)

		case <-timer.C:
			if err := opts.OnChange(); err != nil {
				output.Error("re-run failed", "error", err)
			}
		}
	}
}

func relevant(event fsnotify.Event, wanted map[string]bool) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return len(wanted) == 0 || wanted[filepath.Base(event.Name)]
}
