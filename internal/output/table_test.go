package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableString(t *testing.T) {
	out := stripAnsi(NewTable("A", "B").Row("one", "two").Row("three", "four").String())

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "three")
	assert.Contains(t, out, "four")
}

func TestRenderPatchTable(t *testing.T) {
	out := stripAnsi(RenderPatchTable([]PatchRow{
		{ID: "i18n-initial-locale-load", Version: 1, Description: "load saved locale"},
	}))

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "i18n-initial-locale-load")
	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "load saved locale")
}
