// Package htmlnorm rewrites server-rendered markup before it is sent to the
// client: relative URLs are rebased against the application context path,
// inline event-handler attributes (onclick and friends, javascript: URLs)
// are extracted into client-side commands attached by element ID, and a
// caller hook can transform individual elements during the walk.
//
// The engine is a pure tree transform. It never mutates its input, never
// performs I/O, and owns no global state: the unique-ID source and all
// configuration are injected per run through Config.
//
// Basic usage:
//
//	cfg := htmlnorm.Config{ContextPath: "/app", StripComments: true}
//	nodes, cmds, err := htmlnorm.Normalize(cfg, tree, struct{}{}, nil)
//
// The resulting commands are serialized into a script block by pkg/js.
package htmlnorm
