// Package session owns the client's authentication state: who is logged in
// and the bearer token proving it.
//
// The token and the serialized user record live in the local session
// database as two keyed entries. They are always written and cleared inside
// one transaction, so no request can ever observe a half-cleared session.
// State moves from unauthenticated to authenticated only through a
// successful Register or Login; it moves back through Logout, DeleteAccount,
// or the transport's 401 hook. There are no other transitions.
package session
