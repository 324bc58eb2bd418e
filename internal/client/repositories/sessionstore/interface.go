// Package sessionstore persists the client session as keyed entries in a
// local sqlite database: one entry for the bearer token, one for the
// serialized user record.
package sessionstore

import "context"

// Keys under which the session entries are stored.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is a keyed byte store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
