// Package api implements the REST transport for the notas backend.
//
// Every request goes through a single Client: JSON content type, a fixed
// timeout, an X-Request-Id header, and an Authorization bearer header read
// from the configured TokenSource just before the request is sent. Responses
// with 2xx status have their {"data": ...} envelope unwrapped into the
// caller's value; every other outcome is normalized into the package error
// taxonomy (ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrServer).
//
// A 401 from any endpoint is terminal for the session: the registered
// unauthorized hook runs before the error is returned, so the persisted
// token and user record are already gone when the caller reacts.
package api
