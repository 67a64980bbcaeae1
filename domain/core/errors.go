package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Schema errors abort an allocation run outright
	ErrSchema                 = errors.New("schema error")
	ErrReferenceColumnMissing = fmt.Errorf("%w: reference column not found", ErrSchema)
	ErrNoFacultyColumns       = fmt.Errorf("%w: no faculty columns after reference column", ErrSchema)
	ErrEmptyTable             = fmt.Errorf("%w: table has no data rows", ErrSchema)

	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: run", ErrNotFound)
)

// Error constructors with context
func NewReferenceColumnError(refCol string) error {
	return fmt.Errorf("%w: %q", ErrReferenceColumnMissing, refCol)
}

func NewNoFacultyColumnsError(refCol string) error {
	return fmt.Errorf("%w (reference column %q is the last column)", ErrNoFacultyColumns, refCol)
}

// Error checking helpers
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
