package iocsv

import "errors"

// Sentinel errors for header-indexed CSV decoding.
var (
	// ErrMissingColumn indicates a required header name is absent.
	ErrMissingColumn = errors.New("iocsv: missing required column")

	// ErrMalformedRow indicates a row's value could not be parsed as the
	// column's expected type.
	ErrMalformedRow = errors.New("iocsv: malformed row")
)
