package domain

import (
	"github.com/allisson/bsn-generator/internal/errors"
)

var (
	// ErrInvalidClass indicates a class other than "valid" or "invalid" was requested.
	ErrInvalidClass = errors.Wrap(errors.ErrInvalidInput, "type must be one of: valid, invalid")

	// ErrInvalidCount indicates a zero or negative count was requested.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "count must be a positive integer")

	// ErrGenerationExhausted indicates the attempt ceiling was reached before the target count.
	ErrGenerationExhausted = errors.Wrap(errors.ErrExhausted, "generation attempts exhausted")

	// ErrOutputWrite indicates the listing file could not be written.
	ErrOutputWrite = errors.New("error writing to output file")

	// ErrInputRead indicates the listing file could not be read.
	ErrInputRead = errors.New("error reading input file")

	// ErrClassMismatch indicates a listing contains numbers outside the expected class.
	ErrClassMismatch = errors.Wrap(errors.ErrConflict, "listing does not match the expected type")
)
