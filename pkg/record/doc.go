// Package record provides typed field containers for document-mapped
// records: named fields with defaults, optionality, dirty tracking, and
// per-field validation, assembling into a map[string]any document and
// back. The mapping deliberately stops at the document; persisting it
// against a concrete database is the caller's concern, expressed through
// the Store interface.
package record
