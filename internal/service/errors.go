package service

import "errors"

var (
	// ErrNotFound reports a delete/show/export against an id that does not
	// exist in the store.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput covers precondition failures (missing title, document
	// text too short) caught before any network call is attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeneration is the single user-visible failure kind for a generation
	// call; the underlying cause goes to the log, never to the client.
	ErrGeneration = errors.New("generation failed, please try again")
)
