package cmdutil

import (
	"errors"
	"sort"

	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

// PrintFatal logs err in a user-friendly form and returns an *ExitError
// marked as printed, so main does not print it again.
//
// A *DetailError prints its type and message with the location as a
// key-value, then its context lines and hint. The cause is logged at debug
// level.
func PrintFatal(msg string, err error) error {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		keyvals := []interface{}{}
		if detail.Location != "" {
			keyvals = append(keyvals, "location", detail.Location)
		}
		output.Error(detail.Type+": "+detail.Message, keyvals...)
		for _, k := range sortedKeys(detail.Context) {
			output.Details("  " + k + ": " + detail.Context[k])
		}
		if detail.Hint != "" {
			output.Info("hint: " + detail.Hint)
		}
		if detail.Cause != nil {
			output.Debug("cause", "error", detail.Cause)
		}
	} else {
		output.Error(msg, "error", err)
	}

	return &oerrors.ExitError{
		Err:     err,
		Code:    oerrors.ExitCodeFromError(err),
		Printed: true,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
