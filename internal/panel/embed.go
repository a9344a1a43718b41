package panel

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Placeholder delimiters inside the panel script.
const (
	DataStart = "/*PANEL_DATA_PLACEHOLDER*/"
	DataEnd   = "/*END_PANEL_DATA*/"
)

// EmbedData substitutes payload into the first placeholder region of script.
//
// A region is a start delimiter immediately followed by "{", then the first
// "}" that is immediately followed by the end delimiter. The delimiters are
// kept and the braced text between them is replaced by the payload's compact
// JSON form. A nil payload, or a script without such a region, returns script
// unchanged with embedded false.
func EmbedData(script string, payload json.RawMessage) (result string, embedded bool) {
	if len(payload) == 0 {
		return script, false
	}

	bodyStart, bodyEnd, ok := findRegion(script)
	if !ok {
		return script, false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		// Load only hands out compacted, valid payloads.
		return script, false
	}

	return script[:bodyStart] + buf.String() + script[bodyEnd:], true
}

// findRegion returns the bounds of the braced body of the first placeholder
// region, delimiters excluded.
func findRegion(script string) (bodyStart, bodyEnd int, ok bool) {
	for from := 0; ; {
		i := strings.Index(script[from:], DataStart)
		if i < 0 {
			return 0, 0, false
		}
		bodyStart = from + i + len(DataStart)
		from = bodyStart

		if !strings.HasPrefix(script[bodyStart:], "{") {
			continue
		}
		if end := strings.Index(script[bodyStart+1:], "}"+DataEnd); end >= 0 {
			return bodyStart, bodyStart + 1 + end + 1, true
		}
		return 0, 0, false
	}
}
