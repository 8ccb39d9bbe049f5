package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidAgent indicates an Agent failed validation.
	ErrInvalidAgent = errors.New("invalid agent")

	// ErrInvalidCarrier indicates a Carrier failed validation.
	ErrInvalidCarrier = errors.New("invalid carrier")

	// ErrInvalidLineOfBusiness indicates a LineOfBusiness failed validation.
	ErrInvalidLineOfBusiness = errors.New("invalid line of business")

	// ErrInvalidUser indicates a User failed validation.
	ErrInvalidUser = errors.New("invalid user")

	// ErrEmptyNaturalKey indicates the natural key field is blank.
	ErrEmptyNaturalKey = errors.New("natural key cannot be empty")

	// ErrEmptyFirstName indicates the user firstname is blank.
	ErrEmptyFirstName = errors.New("firstname cannot be empty")

	// ErrInvalidDate indicates a date value matched none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid date")
)
