package htmlnorm

import "strings"

// RewriteFunc is a caller-installed URL rewriter applied after context-path
// rebasing, e.g. to decorate URLs with a session identifier.
type RewriteFunc func(string) string

// URLAttribute reports which attribute carries the element's URL and
// whether caller rewriting applies to it. Stylesheet links and script
// sources are rebased but never rewritten, so cacheable assets keep
// stable URLs.
func URLAttribute(tag string) (attr string, rewrite bool) {
	switch tag {
	case "form":
		return "action", true
	case "a":
		return "href", true
	case "link":
		return "href", false
	case "script":
		return "src", false
	default:
		return "src", true
	}
}

// NormalizeURL rebases raw against contextPath when it is context-relative
// and then applies the optional rewriter. This is a best-effort string
// transform, not a URL parser: malformed values pass through unchanged and
// no error is ever reported.
//
// Only values with a single leading slash that do not already carry the
// context path are rebased. Scheme-ful values (http:, https:, mailto:),
// protocol-relative values (//host/...) and bare-relative values
// (foo/bar) are left alone.
func NormalizeURL(contextPath, raw string, shouldRewrite bool, rewrite RewriteFunc) string {
	v := raw
	if contextRelative(v, contextPath) {
		v = contextPath + v
	}
	if shouldRewrite && rewrite != nil {
		v = rewrite(v)
	}
	return v
}

func contextRelative(v, contextPath string) bool {
	if v == "" || contextPath == "" {
		return false
	}
	if !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return false
	}
	// Already rebased, either exactly the context path or below it.
	if v == contextPath || strings.HasPrefix(v, contextPath+"/") {
		return false
	}
	return true
}
