// Package lift turns server-rendered HTML into stateful pages.
//
// Application templates write plain markup with inline event attributes
// (onclick, form actions, javascript: links). Lift parses that markup into
// a node tree, extracts the event wiring into server-held commands,
// rewrites URLs under the application's context path, and emits cleaned
// HTML plus a script block that binds the extracted handlers by element
// id.
//
// # Quick Start
//
// Create a page, register snippets, and render:
//
//	page := lift.NewPage(
//	    lift.WithContextPath("/app"),
//	)
//	page.Snippets().Register("greeting", greetingSnippet)
//
//	html, err := page.RenderHTML(ctx, nodes)
//
// The returned markup contains the normalized tree followed by a script
// element registering every extracted event handler.
//
// # Packages
//
// The root package is a thin facade. The work happens in:
//
//   - pkg/htmlnorm: the tree normalizer and event extractor
//   - pkg/htmlparse: HTML parsing and rendering for node trees
//   - pkg/state: per-page render state, values, and notices
//   - pkg/snippet: named server-side fragments invoked from markup
//   - pkg/js: command serialization into script blocks
//   - pkg/i18n: message bundles and tree localization
//   - pkg/templatecache: cached parsed templates
//   - pkg/sanitize: cleanup of untrusted markup
//   - pkg/record: typed field documents for page-backed forms
package lift
