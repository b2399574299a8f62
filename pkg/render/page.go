package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Scripts contains script tags to include in the head
	Scripts []ScriptTag

	// Styles contains inline CSS styles
	Styles []string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src         string // src attribute
	Integrity   string // integrity attribute
	CrossOrigin string // crossorigin attribute
	Defer       bool   // defer attribute
	Inline      string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.writeDocumentStart(w, page); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	return writeDocumentEnd(w)
}

func (r *Renderer) writeDocumentStart(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	_, err := io.WriteString(w, "<body>\n")
	return err
}

func writeDocumentEnd(w io.Writer) error {
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	var head []*vdom.VNode
	head = append(head,
		vdom.NewElement("meta", nil, vdom.Charset("utf-8")),
		vdom.NewElement("meta", nil, vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	if page.Title != "" {
		head = append(head, vdom.NewElement("title", nil, page.Title))
	}
	for _, meta := range page.Meta {
		head = append(head, vdom.NewElement("meta", nil, vdom.Name(meta.Name), vdom.Content(meta.Content)))
	}
	for _, href := range page.StyleSheets {
		head = append(head, vdom.NewElement("link", nil, vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	for _, style := range page.Styles {
		head = append(head, vdom.NewElement("style", nil, vdom.Raw(style)))
	}
	for _, script := range page.Scripts {
		head = append(head, scriptNode(script))
	}

	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	for _, node := range head {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
		if err := r.renderNode(w, node, 0); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n")
	return err
}

func scriptNode(script ScriptTag) *vdom.VNode {
	args := []any{
		vdom.AttrIf(script.Src != "", vdom.Src(script.Src)),
		vdom.AttrIf(script.Integrity != "", vdom.Integrity(script.Integrity)),
		vdom.AttrIf(script.CrossOrigin != "", vdom.Crossorigin(script.CrossOrigin)),
		vdom.AttrIf(script.Defer, vdom.RawAttr("defer", true)),
	}
	if script.Inline != "" {
		args = append(args, vdom.Raw(script.Inline))
	}
	return vdom.NewElement("script", nil, args...)
}
