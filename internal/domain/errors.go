package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalid indicates the input was rejected before any write.
	ErrInvalid = errors.New("invalid input")

	// ErrNotAuthor indicates the caller is not the recorded author of the entity.
	ErrNotAuthor = errors.New("not the author")

	// ErrNotConfigured indicates the identity provider is not configured in
	// this environment. All identity operations return it uniformly.
	ErrNotConfigured = errors.New("identity provider not configured")

	// ErrUnsupported is returned for operations that require a privileged
	// server-side call and can never succeed from this client.
	ErrUnsupported = errors.New("requires a privileged server-side operation; contact support")
)
