// Package htmlparse converts between markup text and the node trees the
// normalizer operates on. Parsing is built on golang.org/x/net/html, so
// anything a browser-grade parser accepts (templ output, html/template
// output, stored fragments) can enter the pipeline; Render serializes a
// normalized tree back to markup. Markdown turns markdown source into a
// node tree for content-driven snippets.
package htmlparse
