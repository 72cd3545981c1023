package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed board.html.tmpl
var boardTemplate string

var pageTemplate = template.Must(template.New("board").Parse(boardTemplate))

// WriteHTML writes the page as a standalone HTML document
func WriteHTML(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page.Sections()); err != nil {
		return fmt.Errorf("failed to render board page: %w", err)
	}
	return nil
}
