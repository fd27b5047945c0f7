/*
Package render turns tool records into static HTML detail pages.

Pages link to the site's shared stylesheet and index page one directory up, so
they must be written into a direct subdirectory of the site root.
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/aitoolcomparator/tool-pages/internal/record"
)

// DefaultBaseURL is the public origin used for canonical page URLs.
const DefaultBaseURL = "https://aitoolcomparator.com"

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Renderer renders and writes tool pages.
type Renderer struct {
	tmpl    *template.Template
	baseURL string
	pageDir string
}

// NewRenderer creates a Renderer whose canonical URLs are baseURL/pageDir/<file>.
// An empty baseURL uses DefaultBaseURL.
func NewRenderer(baseURL, pageDir string) *Renderer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Renderer{
		tmpl:    pageTemplate,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		pageDir: filepath.ToSlash(pageDir),
	}
}

// Page resolves rec and fills in its canonical URL.
func (r *Renderer) Page(rec record.Record) Page {
	page := Resolve(rec)
	page.URL = r.baseURL + "/" + path.Join(r.pageDir, page.File)
	return page
}

// Render writes the HTML document for rec to w.
func (r *Renderer) Render(w io.Writer, rec record.Record) error {
	if rec.Name() == "" {
		return fmt.Errorf("record has no %q field", record.FieldTool)
	}
	if err := r.tmpl.Execute(w, r.Page(rec)); err != nil {
		return fmt.Errorf("render %s: %w", rec.Name(), err)
	}
	return nil
}

// WritePage renders rec into dir, replacing any file of the same name, and
// returns the generated file name.
func (r *Renderer) WritePage(dir string, rec record.Record) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rec); err != nil {
		return "", err
	}

	file := PageFile(rec.Name())
	if err := os.WriteFile(filepath.Join(dir, file), buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write page: %w", err)
	}
	return file, nil
}
