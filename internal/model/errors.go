package model

import "errors"

var (
	// ErrNotFound is returned by lookups that matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks a programmer error in the request itself,
	// surfaced before any store call is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrVerificationTokenNotFound is the single outward error of token
	// consumption. The underlying cause stays in the wrap chain.
	ErrVerificationTokenNotFound = errors.New("no verification token found")
)
