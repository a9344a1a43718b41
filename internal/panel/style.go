package panel

import (
	"bytes"
	"encoding/json"
)

// InlineStyle wraps css in a self-executing snippet that creates a <style>
// element at runtime and appends it to document.head.
func InlineStyle(css string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(css)
	literal := bytes.TrimRight(buf.Bytes(), "\n")

	return "(function(){var s=document.createElement('style');s.textContent=" +
		string(literal) +
		";document.head.appendChild(s);})();"
}

// ScriptPayload returns the script text injected into the main bundle.
// When inlineCSS is set the stylesheet snippet is prepended.
func ScriptPayload(script, css string, inlineCSS bool) string {
	if !inlineCSS {
		return script
	}
	return InlineStyle(css) + "\n" + script
}
