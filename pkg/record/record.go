package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Record is an ordered collection of fields mapped to one document.
type Record struct {
	fields []Field
	byName map[string]Field
}

// New assembles a record from its fields. Field names must be unique;
// a duplicate panics, since record shapes are fixed at startup.
func New(fields ...Field) *Record {
	r := &Record{
		fields: fields,
		byName: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		if _, dup := r.byName[f.Name()]; dup {
			panic("record: duplicate field " + f.Name())
		}
		r.byName[f.Name()] = f
	}
	return r
}

// Fields returns the record's fields in declaration order.
func (r *Record) Fields() []Field { return r.fields }

// Field returns the field with the given document key.
func (r *Record) Field(name string) (Field, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// IsDirty reports whether any field has unsaved changes.
func (r *Record) IsDirty() bool {
	for _, f := range r.fields {
		if f.IsDirty() {
			return true
		}
	}
	return false
}

// ClearDirty marks every field clean, typically after persisting.
func (r *Record) ClearDirty() {
	for _, f := range r.fields {
		f.ClearDirty()
	}
}

// Validate checks every field and joins the failures.
func (r *Record) Validate() error {
	var errs []error
	for _, f := range r.fields {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Document assembles the record into a document. Unset fields are
// omitted.
func (r *Record) Document() map[string]any {
	doc := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		if v, ok := f.documentValue(); ok {
			doc[f.Name()] = v
		}
	}
	return doc
}

// Load resets the record from a document. Every field is cleared first,
// so fields absent from the document come back unset. Unknown keys are
// an error: the record shape is the schema.
func (r *Record) Load(doc map[string]any) error {
	for _, f := range r.fields {
		f.clear()
	}
	for key, val := range doc {
		f, ok := r.byName[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if err := f.loadDocumentValue(val); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the record's document form.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// UnmarshalJSON decodes a document and loads it.
func (r *Record) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("record: decode document: %w", err)
	}
	return r.Load(doc)
}

// Store persists record documents. Implementations adapt a concrete
// document database; this package never talks to one directly.
type Store interface {
	// Save upserts the document under the given key.
	Save(ctx context.Context, key string, doc map[string]any) error

	// Find retrieves the document stored under the key.
	Find(ctx context.Context, key string) (map[string]any, error)

	// Delete removes the document stored under the key.
	Delete(ctx context.Context, key string) error
}
