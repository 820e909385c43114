// Package render walks the category tree and produces the output directory
// tree: an index page per category where one applies, a templated page per
// markdown document, html documents rendered in place, assets copied
// verbatim.
//
// The pipeline is fully sequential and aborts on the first failure; output
// writes are not transactional.
package render

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitetree/internal/config"
	"git.home.luguber.info/inful/sitetree/internal/errors"
	"git.home.luguber.info/inful/sitetree/internal/logfields"
	"git.home.luguber.info/inful/sitetree/internal/site"
)

// IndexFileName is the generated listing page per category.
const IndexFileName = "index.html"

var titleCaser = cases.Title(language.English)

// templateFuncs are helpers available inside every site template.
var templateFuncs = template.FuncMap{
	"titlecase": titleCaser.String,
}

// Pipeline renders one site tree into one output tree.
type Pipeline struct {
	rootDir   string
	outputDir string
	root      *site.Category

	// Parsed templates keyed by file path, so a template inherited by many
	// categories is parsed once per run.
	templates map[string]*template.Template
}

// New validates the root and output paths and prepares a pipeline. The root
// must exist and be a directory; the output path, if it exists, must be a
// directory. Violations are configuration errors raised before any
// rendering.
func New(cfg *config.Config) (*Pipeline, error) {
	rootDir, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, errors.RootNotFound(cfg.Root)
	}
	outputDir, err := filepath.Abs(cfg.Output)
	if err != nil {
		return nil, errors.OutputNotDirectory(cfg.Output)
	}

	info, err := os.Stat(rootDir)
	if os.IsNotExist(err) {
		return nil, errors.RootNotFound(rootDir)
	}
	if err != nil {
		return nil, errors.ReadFailed(rootDir, err)
	}
	if !info.IsDir() {
		return nil, errors.RootNotDirectory(rootDir)
	}

	if info, err := os.Stat(outputDir); err == nil && !info.IsDir() {
		return nil, errors.OutputNotDirectory(outputDir)
	}

	return &Pipeline{
		rootDir:   rootDir,
		outputDir: outputDir,
		root:      site.NewRoot(rootDir, cfg.Templates),
		templates: make(map[string]*template.Template),
	}, nil
}

// Root returns the root category of the tree being rendered.
func (p *Pipeline) Root() *site.Category {
	return p.root
}

// OutputDir returns the absolute output directory.
func (p *Pipeline) OutputDir() string {
	return p.outputDir
}

// Run renders the whole tree, pre-order from the root.
func (p *Pipeline) Run() error {
	slog.Info("Rendering site", logfields.Root(p.rootDir), logfields.Output(p.outputDir))
	return p.renderCategory(p.root, p.outputDir)
}

func (p *Pipeline) renderCategory(category *site.Category, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.WriteFailed(outDir, err)
	}

	docs, err := category.Documents()
	if err != nil {
		return err
	}
	children, err := category.Children()
	if err != nil {
		return err
	}
	markdownDocs, err := category.MarkdownDocuments()
	if err != nil {
		return err
	}

	childrenWithContent := make([]*site.Category, 0, len(children))
	for _, child := range children {
		ok, err := child.HasRenderableContent()
		if err != nil {
			return err
		}
		if ok {
			childrenWithContent = append(childrenWithContent, child)
		}
	}

	// Listing page. Skipped without error when no index template resolved or
	// the category has no markdown documents. Its children binding is the
	// unfiltered list.
	if category.IndexTemplate != "" && len(markdownDocs) > 0 {
		data := &TemplateData{
			Documents: markdownDocs,
			Children:  children,
			Root:      p.root,
			Category:  category,
		}
		indexPath := filepath.Join(outDir, IndexFileName)
		if err := p.renderToFile(category.IndexTemplate, data, indexPath); err != nil {
			return err
		}
		slog.Debug("Wrote index page",
			logfields.Category(category.URI()),
			logfields.Template(category.IndexTemplate),
			logfields.Path(indexPath))
	}

	// Per-document pass, in directory-listing order.
	for _, doc := range docs {
		switch {
		case doc.Kind == site.KindMarkdown && category.DocumentTemplate != "":
			data := &TemplateData{
				Documents: markdownDocs,
				Children:  childrenWithContent,
				Root:      p.root,
				Category:  category,
				Document:  doc,
			}
			outPath := filepath.Join(outDir, doc.OutputName())
			if err := p.renderToFile(category.DocumentTemplate, data, outPath); err != nil {
				return err
			}
			slog.Debug("Rendered document",
				logfields.File(doc.Name()),
				logfields.Kind(doc.Kind.String()),
				logfields.Path(outPath))

		case doc.Kind == site.KindHTML:
			// The document's own file is the template; no Document binding.
			data := &TemplateData{
				Documents: markdownDocs,
				Children:  childrenWithContent,
				Root:      p.root,
				Category:  category,
			}
			outPath := filepath.Join(outDir, doc.Name())
			if err := p.renderToFile(doc.Path, data, outPath); err != nil {
				return err
			}
			slog.Debug("Rendered html page",
				logfields.File(doc.Name()),
				logfields.Path(outPath))

		default:
			// Assets, and markdown documents with no resolved document
			// template. The latter is a deliberate fallthrough: the raw
			// markdown source is copied byte-for-byte and keeps its .md
			// extension in the output tree.
			outPath := filepath.Join(outDir, doc.Name())
			if err := copyFile(doc.Path, outPath); err != nil {
				return err
			}
			slog.Debug("Copied file",
				logfields.File(doc.Name()),
				logfields.Kind(doc.Kind.String()),
				logfields.Path(outPath))
		}
	}

	slog.Info("Rendered category",
		logfields.Category(category.URI()),
		slog.Int("documents", len(docs)),
		slog.Int("children", len(children)))

	// Every child gets an output directory, including children without
	// renderable content.
	for _, child := range children {
		childDir := filepath.Join(outDir, filepath.Base(child.Dir))
		if err := p.renderCategory(child, childDir); err != nil {
			return err
		}
	}
	return nil
}

// renderToFile executes the template at templatePath with data and writes
// the result to outPath.
func (p *Pipeline) renderToFile(templatePath string, data *TemplateData, outPath string) error {
	tpl, err := p.template(templatePath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return errors.TemplateExecFailed(templatePath, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return errors.WriteFailed(outPath, err)
	}
	return nil
}

// template returns the parsed template for a path, parsing it on first use.
func (p *Pipeline) template(path string) (*template.Template, error) {
	if tpl, ok := p.templates[path]; ok {
		return tpl, nil
	}
	tpl, err := template.New(filepath.Base(path)).Funcs(templateFuncs).ParseFiles(path)
	if err != nil {
		return nil, errors.TemplateParseFailed(path, err)
	}
	p.templates[path] = tpl
	return tpl, nil
}

// copyFile copies a single file byte-for-byte.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.ReadFailed(src, err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return errors.WriteFailed(dst, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.WriteFailed(dst, err)
	}
	return nil
}
