package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCatalog signals a catalog without records.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrDuplicateRecord signals two catalog records sharing an identifier.
	ErrDuplicateRecord = errors.New("duplicate record")
	// ErrInvalidRecord signals a record that failed field validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidCollection signals an invalid record-store collection name.
	ErrInvalidCollection = errors.New("invalid collection")
	// ErrNotImplemented signals an unconfigured or unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
	// ErrStoreUnavailable signals a record store failure.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// FieldError wraps ErrInvalidRecord with the offending field name.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q %s", ErrInvalidRecord.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRecord }

// NewFieldError creates a field validation error.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
