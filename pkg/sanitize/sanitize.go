// Package sanitize cleans untrusted markup before it enters the page tree.
// User-supplied fragments pass through a bluemonday policy first, so the
// normalizer only ever sees event attributes written by application
// templates, never ones injected through content.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/htmlparse"
)

var (
	plainPolicy    *bluemonday.Policy
	fragmentPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Plain strips ALL HTML, returns text only.
		plainPolicy = bluemonday.StrictPolicy()

		// Fragment allows the formatting tags that rendered markdown and
		// user-written rich text produce. Scripts, event handlers, and
		// javascript: URLs are always stripped.
		fragmentPolicy = bluemonday.NewPolicy()
		fragmentPolicy.AllowStandardURLs()
		fragmentPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		fragmentPolicy.AllowAttrs("href").OnElements("a")
		fragmentPolicy.RequireNoFollowOnLinks(true)
	})
}

// Plain strips all markup from s and returns the text content.
func Plain(s string) string {
	initPolicies()
	return plainPolicy.Sanitize(s)
}

// Fragment removes unsafe markup from s, keeping basic formatting tags.
// Use for user-generated content that is rendered into a page fragment.
func Fragment(s string) string {
	initPolicies()
	return fragmentPolicy.Sanitize(s)
}

// FragmentNodes sanitizes s and parses the result into a node tree, ready
// for normalization.
func FragmentNodes(s string) ([]htmlnorm.Node, error) {
	return htmlparse.ParseFragment(Fragment(s))
}

// WithPolicy applies a custom bluemonday policy. A nil policy returns the
// input unchanged.
func WithPolicy(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
