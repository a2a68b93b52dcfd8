package session

import "context"

type sessionCtxKey struct{}

// WithSession stores the plan session in the context for downstream access.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// FromContext retrieves the plan session from the context, if present.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok
}

// MustFromContext retrieves the plan session or fails with
// ErrSessionNotInContext when no session was attached.
func MustFromContext(ctx context.Context) (*Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, ErrSessionNotInContext
	}
	return s, nil
}
