package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeading(t *testing.T) {
	html, err := Render([]byte("# Intro"))
	require.NoError(t, err)
	assert.Contains(t, html, `<h1 id="intro">Intro</h1>`)
}

func TestRenderGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	html, err := Render([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestRenderKeepsRawHTML(t *testing.T) {
	html, err := Render([]byte("before\n\n<div class=\"x\">raw</div>\n"))
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="x">raw</div>`)
}

func TestRenderEmpty(t *testing.T) {
	html, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, html)
}
