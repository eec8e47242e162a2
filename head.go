package authpages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a page component in its document shell.
type Layout func(meta []MetaTag, page templ.Component) templ.Component

// MetaTags renders tags as <meta> elements in the given order.
func MetaTags(tags []MetaTag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, t := range tags {
			_, err := io.WriteString(w, `<meta `+templ.EscapeString(string(t.Kind))+`="`+
				templ.EscapeString(t.Key)+`" content="`+templ.EscapeString(t.Content)+`">`)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Title returns the content of the name="title" tag, or "".
func Title(tags []MetaTag) string {
	for _, t := range tags {
		if t.Kind == MetaName && t.Key == "title" {
			return t.Content
		}
	}
	return ""
}

// Document is the default [Layout]: a minimal HTML5 page whose head carries
// the title and meta tags.
func Document(meta []MetaTag, page templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">`
		if title := Title(meta); title != "" {
			head += "<title>" + templ.EscapeString(title) + "</title>"
		}
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := MetaTags(meta).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head><body>"); err != nil {
			return err
		}
		if err := page.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
