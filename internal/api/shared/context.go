// Package shared holds the helpers used by every HTTP handler: context
// keys, request decoding and validation, and response writing.
package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// AccountIDContextKey is the context key under which the auth
	// middleware stores the authenticated account's ID.
	AccountIDContextKey ContextKey = "accountID"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// AccountIDFromContext extracts the authenticated account's ID from the
// context. Returns the ID and a boolean indicating whether the auth
// middleware set one.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDContextKey).(int64)
	if !ok || accountID == 0 {
		return 0, false
	}
	return accountID, true
}
