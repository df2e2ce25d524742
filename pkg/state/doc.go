// Package state holds the per-request rendering state, conventionally
// called S. A State carries everything one render pass needs from its
// environment: the application context path, the locale, the URL
// rewriter, the unique-ID source for synthesized element IDs, arbitrary
// request-scoped values, and user-facing notices.
//
// A State is created per request (or per asynchronous update) and passed
// explicitly through the call chain. Nothing in this package is global:
// two concurrent requests hold two independent States, and the only
// shared-use concern, the event-ID counter, allocates atomically.
package state
