// Package errs holds the domain error taxonomy. Every store operation that
// fails returns an error wrapping one of the sentinels below so that callers
// (and the HTTP layer) can branch with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation — a required field is missing/empty or a value is out of
	// range. Raised before any mutation; no partial writes.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — update/delete/status-change referenced an id that does not
	// exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrReference — creation referenced a client or product id unknown to the
	// owning registry.
	ErrReference = errors.New("unknown reference")
	// ErrCollision — a generated tracking number is already in use and retries
	// were exhausted.
	ErrCollision = errors.New("tracking number collision")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrValidation, args)...)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

func Referencef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrReference, args)...)
}

func Collisionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrCollision, args)...)
}

func prepend(err error, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, err)
	return append(out, args...)
}
