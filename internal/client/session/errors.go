package session

import "errors"

// Validation errors raised before any network call is made.
var (
	ErrNameRequired     = errors.New("name must not be empty")
	ErrEmailInvalid     = errors.New("email address is invalid")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
)

// ErrNoSession is returned by token introspection when nobody is logged in.
var ErrNoSession = errors.New("no active session")
