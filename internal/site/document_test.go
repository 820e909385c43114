package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitetree/internal/errors"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMarkdown, KindOf("01-intro.md"))
	assert.Equal(t, KindHTML, KindOf("page.html"))
	assert.Equal(t, KindHTML, KindOf("page.htm"))
	assert.Equal(t, KindAsset, KindOf("logo.png"))
	assert.Equal(t, KindAsset, KindOf("Makefile"))

	// Extension matching is case-sensitive.
	assert.Equal(t, KindAsset, KindOf("README.MD"))
	assert.Equal(t, KindAsset, KindOf("page.HTML"))
}

func TestNewDocumentMarkdown(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "03-intro.md"), "# Intro")

	doc, err := NewDocument(path)
	require.NoError(t, err)
	assert.Equal(t, KindMarkdown, doc.Kind)
	assert.Equal(t, 3, doc.Index)
	assert.Equal(t, "intro", doc.Title)
	assert.Equal(t, "03-intro.html", doc.OutputName())
	assert.Equal(t, "03-intro.html", doc.Href())
	assert.False(t, doc.ModTime.IsZero())
}

// Non-markdown documents carry the unordered sentinel and the raw filename,
// extension included.
func TestNewDocumentAsset(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "02-logo.png"), "png bytes")

	doc, err := NewDocument(path)
	require.NoError(t, err)
	assert.Equal(t, KindAsset, doc.Kind)
	assert.Equal(t, UnorderedIndex, doc.Index)
	assert.Equal(t, "02-logo.png", doc.Title)
	assert.Equal(t, "02-logo.png", doc.OutputName())
}

func TestNewDocumentMissingFile(t *testing.T) {
	_, err := NewDocument(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileSystem))
}

func TestContent(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "notes.md"), "hello *world*")

	doc, err := NewDocument(path)
	require.NoError(t, err)
	content, err := doc.Content()
	require.NoError(t, err)
	assert.Equal(t, "hello *world*", content)
}

func TestHTMLForMarkdown(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "notes.md"), "# Heading")

	doc, err := NewDocument(path)
	require.NoError(t, err)
	html, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
}

func TestHTMLUnsupportedForNonMarkdown(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "logo.png"), "png bytes")

	doc, err := NewDocument(path)
	require.NoError(t, err)
	_, err = doc.HTML()
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryUnsupported))
}
