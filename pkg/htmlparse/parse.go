package htmlparse

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/liftweb/lift/pkg/htmlnorm"
)

// ParseFragment parses markup as body content and returns the resulting
// sibling nodes. This is the entry point for template fragments and
// snippet output.
func ParseFragment(markup string) ([]htmlnorm.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("htmlparse: parse fragment: %w", err)
	}

	nodes := make([]htmlnorm.Node, 0, len(parsed))
	for _, n := range parsed {
		if converted, ok := convert(n); ok {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// ParseDocument parses a full HTML document. The document's top-level
// nodes (doctype, html element) come back as siblings.
func ParseDocument(r io.Reader) ([]htmlnorm.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmlparse: parse document: %w", err)
	}

	var nodes []htmlnorm.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if converted, ok := convert(c); ok {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

func convert(n *html.Node) (htmlnorm.Node, bool) {
	switch n.Type {
	case html.ElementNode:
		el := &htmlnorm.Element{Tag: n.Data}
		if len(n.Attr) > 0 {
			el.Attrs = make([]htmlnorm.Attr, 0, len(n.Attr))
			for _, a := range n.Attr {
				el.Attrs = append(el.Attrs, convertAttr(a))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted, ok := convert(c); ok {
				el.Children = append(el.Children, converted)
			}
		}
		return el, true

	case html.TextNode:
		return htmlnorm.Text(n.Data), true

	case html.CommentNode:
		return htmlnorm.Comment(n.Data), true

	case html.DoctypeNode:
		return htmlnorm.Raw("<!DOCTYPE " + n.Data + ">"), true

	case html.DocumentNode:
		group := htmlnorm.Group{}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted, ok := convert(c); ok {
				group.Children = append(group.Children, converted)
			}
		}
		return group, true

	default:
		return nil, false
	}
}

func convertAttr(a html.Attribute) htmlnorm.Attr {
	if a.Namespace != "" {
		return htmlnorm.Attr{Name: a.Namespace + ":" + a.Key, Value: a.Val, Prefixed: true}
	}
	return htmlnorm.Attr{Name: a.Key, Value: a.Val}
}
