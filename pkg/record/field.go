package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field is one named slot of a record. The typed API lives on
// TypedField[T]; records handle fields uniformly through this interface.
type Field interface {
	// Name returns the document key.
	Name() string

	// Optional reports whether the field may stay unset.
	Optional() bool

	// IsSet reports whether the field currently holds a value.
	IsSet() bool

	// IsDirty reports whether the field changed since the last load or
	// ClearDirty.
	IsDirty() bool

	// ClearDirty marks the field as clean, typically after persisting.
	ClearDirty()

	// Validate checks the field's value against its validators.
	Validate() error

	documentValue() (any, bool)
	loadDocumentValue(v any) error
	clear()
}

// Validator checks one field value.
type Validator[T any] func(T) error

// TypedField is a single typed record field.
type TypedField[T any] struct {
	name       string
	value      T
	set        bool
	dirty      bool
	optional   bool
	validators []Validator[T]
}

// FieldOption configures a TypedField.
type FieldOption[T any] func(*TypedField[T])

// Optional marks the field as allowed to stay unset.
func Optional[T any]() FieldOption[T] {
	return func(f *TypedField[T]) {
		f.optional = true
	}
}

// Default presets the field's value. The field starts clean.
func Default[T any](v T) FieldOption[T] {
	return func(f *TypedField[T]) {
		f.value = v
		f.set = true
	}
}

// Validators appends value checks run by Validate.
func Validators[T any](fns ...Validator[T]) FieldOption[T] {
	return func(f *TypedField[T]) {
		f.validators = append(f.validators, fns...)
	}
}

// NewField creates a typed field with the given document key.
func NewField[T any](name string, opts ...FieldOption[T]) *TypedField[T] {
	f := &TypedField[T]{name: name}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Convenience constructors for the common field types.

func NewString(name string, opts ...FieldOption[string]) *TypedField[string] {
	return NewField(name, opts...)
}

func NewInt(name string, opts ...FieldOption[int64]) *TypedField[int64] {
	return NewField(name, opts...)
}

func NewFloat(name string, opts ...FieldOption[float64]) *TypedField[float64] {
	return NewField(name, opts...)
}

func NewBool(name string, opts ...FieldOption[bool]) *TypedField[bool] {
	return NewField(name, opts...)
}

func NewTime(name string, opts ...FieldOption[time.Time]) *TypedField[time.Time] {
	return NewField(name, opts...)
}

// NewID creates a string field preset with a fresh UUID, the usual
// primary key of a document record.
func NewID(name string, opts ...FieldOption[string]) *TypedField[string] {
	opts = append([]FieldOption[string]{Default(uuid.NewString())}, opts...)
	return NewField(name, opts...)
}

// Name returns the document key.
func (f *TypedField[T]) Name() string { return f.name }

// Optional reports whether the field may stay unset.
func (f *TypedField[T]) Optional() bool { return f.optional }

// IsSet reports whether the field holds a value.
func (f *TypedField[T]) IsSet() bool { return f.set }

// IsDirty reports whether the field has unsaved changes.
func (f *TypedField[T]) IsDirty() bool { return f.dirty }

// ClearDirty marks the field as clean.
func (f *TypedField[T]) ClearDirty() { f.dirty = false }

// Get returns the current value, the zero value when unset.
func (f *TypedField[T]) Get() T { return f.value }

// GetOK returns the current value and whether it is set.
func (f *TypedField[T]) GetOK() (T, bool) { return f.value, f.set }

// Set stores a value and marks the field dirty.
func (f *TypedField[T]) Set(v T) {
	f.value = v
	f.set = true
	f.dirty = true
}

// Validate checks optionality and runs the field's validators.
func (f *TypedField[T]) Validate() error {
	if !f.set {
		if f.optional {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrRequired, f.name)
	}
	for _, check := range f.validators {
		if err := check(f.value); err != nil {
			return fmt.Errorf("record: field %s: %w", f.name, err)
		}
	}
	return nil
}

func (f *TypedField[T]) documentValue() (any, bool) {
	if !f.set {
		return nil, false
	}
	return f.value, true
}

// loadDocumentValue accepts either the field's own type or anything that
// converts through the JSON data model, which is how numbers and
// timestamps arrive from decoded documents.
func (f *TypedField[T]) loadDocumentValue(v any) error {
	if typed, ok := v.(T); ok {
		f.value = typed
		f.set = true
		f.dirty = false
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: field %s: %v", ErrBadValue, f.name, err)
	}
	var typed T
	if err := json.Unmarshal(raw, &typed); err != nil {
		return fmt.Errorf("%w: field %s holds %T", ErrBadValue, f.name, v)
	}
	f.value = typed
	f.set = true
	f.dirty = false
	return nil
}

func (f *TypedField[T]) clear() {
	var zero T
	f.value = zero
	f.set = false
	f.dirty = false
}
