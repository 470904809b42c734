// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys
// and HTTP response writing.
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

// UsernameCtxKey is the key used to store the session username in the
// context. Used together with GetUsernameFromContext for type-safe
// retrieval of the username from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the session username from the context.
//
// Returns the username and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	username, ok := utils.GetUsernameFromContext(ctx)
//	if !ok {
//	    // request is anonymous
//	}
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
