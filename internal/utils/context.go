// Package utils provides general-purpose helpers shared by the client and
// the remote file server: typed context keys, JSON responses, the resty
// client, JWT issuing and parsing, UUID generation and document revisions.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key under which the auth middleware stores the owner of
// the remote namespace a request operates on.
//
//	ctx := context.WithValue(ctx, utils.OwnerCtxKey, "alice")
var OwnerCtxKey = contextKey("owner")

// GetOwnerFromContext retrieves the namespace owner from the context.
// ok is false when the value is missing, empty, or not a string.
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok && owner != ""
}

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, OwnerCtxKey, owner)
}
