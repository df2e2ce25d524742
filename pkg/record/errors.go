package record

import "errors"

// Record errors.
var (
	// ErrUnknownField is returned when a document carries a key no field
	// claims.
	ErrUnknownField = errors.New("record: unknown field")

	// ErrRequired is returned when a required field has no value.
	ErrRequired = errors.New("record: required field missing")

	// ErrBadValue is returned when a document value cannot be converted
	// into the field's type.
	ErrBadValue = errors.New("record: incompatible value")
)
