package site

import (
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/sitetree/internal/config"
	"git.home.luguber.info/inful/sitetree/internal/errors"
)

// RootTitle is the title of the synthetic root category.
const RootTitle = "ROOT"

// Category represents one input directory. It owns its documents and child
// categories; the parent link is a non-owning back-reference used for
// template inheritance and URI construction only.
//
// Document and child lists are computed lazily on first access and cached
// for the rest of the run. The source tree must not change mid-run.
type Category struct {
	Dir   string
	Index int
	Title string

	// Resolved template paths, empty when no template applies anywhere in
	// the ancestor chain. Resolution happens once, at construction.
	DocumentTemplate string
	IndexTemplate    string

	parent *Category
	names  config.TemplatesConfig

	docs           []*Document
	docsErr        error
	docsLoaded     bool
	children       []*Category
	childrenErr    error
	childrenLoaded bool
}

// NewRoot constructs the root category with index 0 and title "ROOT".
func NewRoot(dir string, names config.TemplatesConfig) *Category {
	c := &Category{Dir: dir, Index: 0, Title: RootTitle, names: names}
	c.resolveTemplates()
	return c
}

func newChild(dir string, parent *Category) *Category {
	index, title := ParseFileName(filepath.Base(dir))
	c := &Category{Dir: dir, Index: index, Title: title, parent: parent, names: parent.names}
	c.resolveTemplates()
	return c
}

// resolveTemplates picks this directory's own template files if present,
// otherwise inherits the parent's already-resolved paths unchanged. The
// propagation is strictly root to leaves.
func (c *Category) resolveTemplates() {
	if own := filepath.Join(c.Dir, c.names.Document); fileExists(own) {
		c.DocumentTemplate = own
	} else if c.parent != nil {
		c.DocumentTemplate = c.parent.DocumentTemplate
	}

	if own := filepath.Join(c.Dir, c.names.Index); fileExists(own) {
		c.IndexTemplate = own
	} else if c.parent != nil {
		c.IndexTemplate = c.parent.IndexTemplate
	}
}

// Parent returns the owning category, nil at the root.
func (c *Category) Parent() *Category {
	return c.parent
}

// URI is the slash-joined chain of directory base names from the root down
// to this category. The root contributes nothing and has URI "".
func (c *Category) URI() string {
	if c.parent == nil {
		return ""
	}
	base := filepath.Base(c.Dir)
	if parentURI := c.parent.URI(); parentURI != "" {
		return parentURI + "/" + base
	}
	return base
}

// Documents lists the immediate files of this directory, excluding the two
// reserved template filenames. The result is cached on first access.
func (c *Category) Documents() ([]*Document, error) {
	if c.docsLoaded {
		return c.docs, c.docsErr
	}
	c.docsLoaded = true

	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		c.docsErr = errors.ReadFailed(c.Dir, err)
		return nil, c.docsErr
	}

	docs := make([]*Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == c.names.Document || name == c.names.Index {
			continue
		}
		doc, err := NewDocument(filepath.Join(c.Dir, name))
		if err != nil {
			c.docsErr = err
			return nil, err
		}
		docs = append(docs, doc)
	}
	c.docs = docs
	return c.docs, nil
}

// Children lists the immediate subdirectories as child categories, each with
// this category as parent. The result is cached on first access.
func (c *Category) Children() ([]*Category, error) {
	if c.childrenLoaded {
		return c.children, c.childrenErr
	}
	c.childrenLoaded = true

	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		c.childrenErr = errors.ReadFailed(c.Dir, err)
		return nil, c.childrenErr
	}

	children := make([]*Category, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		children = append(children, newChild(filepath.Join(c.Dir, entry.Name()), c))
	}
	c.children = children
	return c.children, nil
}

// MarkdownDocuments returns this category's markdown documents sorted
// ascending by ordering index. The sort is stable: documents sharing an
// index keep their directory-listing order.
func (c *Category) MarkdownDocuments() ([]*Document, error) {
	docs, err := c.Documents()
	if err != nil {
		return nil, err
	}
	mdocs := make([]*Document, 0, len(docs))
	for _, d := range docs {
		if d.Kind == KindMarkdown {
			mdocs = append(mdocs, d)
		}
	}
	sort.SliceStable(mdocs, func(i, j int) bool {
		return mdocs[i].Index < mdocs[j].Index
	})
	return mdocs, nil
}

// HasRenderableContent reports whether at least one immediate document is
// markdown or html. Categories failing this test still get rendered but are
// filtered from the children binding of document pages.
func (c *Category) HasRenderableContent() (bool, error) {
	docs, err := c.Documents()
	if err != nil {
		return false, err
	}
	for _, d := range docs {
		if d.Kind != KindAsset {
			return true, nil
		}
	}
	return false, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
