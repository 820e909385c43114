package render

import "git.home.luguber.info/inful/sitetree/internal/site"

// TemplateData is the binding surface handed to site templates.
//
// Children is the unfiltered child list for index pages and the
// content-filtered list for document and html pages. Document is set only
// when a document template renders a markdown page.
type TemplateData struct {
	Documents []*site.Document
	Children  []*site.Category
	Root      *site.Category
	Category  *site.Category
	Document  *site.Document
}
