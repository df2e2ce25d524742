package htmlparse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/liftweb/lift/pkg/htmlnorm"
)

// voidElements render as a single self-closing tag and never carry
// children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextElements carry script or style source: their text children are
// emitted without entity escaping.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// Render serializes nodes back to markup. Attribute and child order is
// emitted exactly as it appears in the tree.
func Render(nodes []htmlnorm.Node) string {
	var b strings.Builder
	renderNodes(&b, nodes, false)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []htmlnorm.Node, rawText bool) {
	for _, n := range nodes {
		renderNode(b, n, rawText)
	}
}

func renderNode(b *strings.Builder, n htmlnorm.Node, rawText bool) {
	switch v := n.(type) {
	case *htmlnorm.Element:
		b.WriteByte('<')
		b.WriteString(v.Tag)
		for _, a := range v.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteByte('"')
		}
		if voidElements[v.Tag] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		renderNodes(b, v.Children, rawTextElements[v.Tag])
		b.WriteString("</")
		b.WriteString(v.Tag)
		b.WriteByte('>')

	case htmlnorm.Text:
		if rawText {
			b.WriteString(string(v))
		} else {
			b.WriteString(html.EscapeString(string(v)))
		}

	case htmlnorm.Comment:
		b.WriteString("<!--")
		b.WriteString(string(v))
		b.WriteString("-->")

	case htmlnorm.Raw:
		b.WriteString(string(v))

	case htmlnorm.Group:
		renderNodes(b, v.Children, rawText)
	}
}
