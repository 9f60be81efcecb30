package services

import "errors"

var (
	// ErrNotFound reports that the target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner reports that the requester is not the author of the
	// target post. Controllers recover by redirecting, not by
	// rendering an error page.
	ErrNotOwner = errors.New("not the post author")

	// ErrEmailTaken reports a signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)
