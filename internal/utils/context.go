package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// WithSessionID stores the authenticated checkout session id on ctx
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// GetSessionIDFromContext extracts the checkout session id set by the session middleware
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	return id, ok
}
