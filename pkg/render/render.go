// Package render formats decoded records with mustache templates.
//
// Each record is rendered with a context holding:
//
//	index   zero-based position of the record
//	value   the record's content
//	length  the content's length in bytes
//
// Double braces HTML-escape the value; use triple braces ({{{value}}}) for the
// raw text.
package render

import (
	"fmt"
	"io"

	"github.com/cbroglie/mustache"
)

// DefaultTemplate prints each record's raw content.
const DefaultTemplate = "{{{value}}}"

// Template renders records.
type Template struct {
	tmpl *mustache.Template
}

// Parse compiles src. An empty src selects DefaultTemplate.
func Parse(src string) (*Template, error) {
	if src == "" {
		src = DefaultTemplate
	}
	tmpl, err := mustache.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid template %q: %w", src, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render writes one rendering of t per record to w, each followed by a
// newline.
func (t *Template) Render(w io.Writer, records []string) error {
	for i, r := range records {
		ctx := map[string]any{
			"index":  i,
			"value":  r,
			"length": len(r),
		}
		if err := t.tmpl.FRender(w, ctx); err != nil {
			return fmt.Errorf("rendering record %d: %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
