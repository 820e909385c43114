package site

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitetree/internal/errors"
	"git.home.luguber.info/inful/sitetree/internal/markdown"
)

// Kind classifies a document by its filename extension. The classification
// is fixed at construction and never re-derived.
type Kind int

const (
	KindMarkdown Kind = iota // .md
	KindHTML                 // .html, .htm — rendered in place as a template
	KindAsset                // everything else — copied verbatim
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "asset"
	}
}

// KindOf classifies a filename. Extensions are matched case-sensitively.
func KindOf(name string) Kind {
	switch {
	case strings.HasSuffix(name, ".md"):
		return KindMarkdown
	case strings.HasSuffix(name, ".html"), strings.HasSuffix(name, ".htm"):
		return KindHTML
	default:
		return KindAsset
	}
}

// Document represents one content file within a category. Documents are
// constructed when their category enumerates its directory and are immutable
// afterward.
//
// Index and Title follow the filename convention only for markdown
// documents; any other kind carries UnorderedIndex and the raw filename.
type Document struct {
	Path    string // absolute file path
	ModTime time.Time
	Kind    Kind
	Index   int
	Title   string
}

// NewDocument stats the file and derives its metadata.
func NewDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}

	name := filepath.Base(path)
	d := &Document{
		Path:    path,
		ModTime: info.ModTime(),
		Kind:    KindOf(name),
		Index:   UnorderedIndex,
		Title:   name,
	}
	if d.Kind == KindMarkdown {
		d.Index, d.Title = ParseFileName(name)
	}
	return d, nil
}

// Name returns the filename.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// OutputName returns the filename this document gets in the output tree:
// .md becomes .html, everything else is unchanged.
func (d *Document) OutputName() string {
	name := d.Name()
	if d.Kind == KindMarkdown {
		return strings.TrimSuffix(name, ".md") + ".html"
	}
	return name
}

// Href is the link target relative to the document's category, for use in
// templates.
func (d *Document) Href() string {
	return d.OutputName()
}

// Content reads the file as UTF-8 text.
func (d *Document) Content() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", errors.ReadFailed(d.Path, err)
	}
	return string(data), nil
}

// HTML converts a markdown document's content to HTML. Calling it on any
// other kind is a caller error.
//
// The render pipeline itself goes through templates instead; this accessor
// exists for templates and tooling.
func (d *Document) HTML() (template.HTML, error) {
	if d.Kind != KindMarkdown {
		return "", errors.UnsupportedOperation("html", d.Name())
	}
	content, err := d.Content()
	if err != nil {
		return "", err
	}
	rendered, err := markdown.Render([]byte(content))
	if err != nil {
		return "", err
	}
	return template.HTML(rendered), nil
}
