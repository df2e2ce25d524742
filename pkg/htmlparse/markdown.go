package htmlparse

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/liftweb/lift/pkg/htmlnorm"
)

// Markdown converts markdown source into a node tree, via goldmark's HTML
// output. Content-driven snippets use this to contribute subtrees that
// then go through the same normalization as any other markup.
func Markdown(source []byte) ([]htmlnorm.Node, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("htmlparse: convert markdown: %w", err)
	}
	return ParseFragment(buf.String())
}
