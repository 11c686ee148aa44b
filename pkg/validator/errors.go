package validator

import "errors"

var (
	// ErrValidationFailed is matched by ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned by ParseKind for names outside the kind table.
	ErrUnknownKind = errors.New("unknown validation kind")

	// ErrInvalidDigit is returned by CheckDigit when the ID body holds a non-digit.
	ErrInvalidDigit = errors.New("invalid id number digit")

	// ErrInvalidIDLength is returned by CheckDigit when the ID body is not 17 characters.
	ErrInvalidIDLength = errors.New("invalid id number body length")
)
