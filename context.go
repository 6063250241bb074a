package estatekit

import "context"

type sessionContextKey struct{}

// WithSession attaches the session manager to ctx so request-scoped code can
// resolve it with [FromContext] instead of threading it through every call.
func WithSession(ctx context.Context, manager *SessionManager) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, manager)
}

// FromContext returns the session manager attached by [WithSession].
//
// Calling it outside a WithSession scope is a wiring bug, not a logged-out
// user, and it panics immediately rather than returning an empty session —
// otherwise UI code would render an unauthenticated view for the wrong
// reason. Use [SessionFromContext] where absence is a legal state.
func FromContext(ctx context.Context) *SessionManager {
	manager, ok := SessionFromContext(ctx)
	if !ok {
		panic("estatekit: no session manager in context; wrap the context with estatekit.WithSession")
	}
	return manager
}

// SessionFromContext is the non-panicking variant of [FromContext].
func SessionFromContext(ctx context.Context) (*SessionManager, bool) {
	if ctx == nil {
		return nil, false
	}
	manager, ok := ctx.Value(sessionContextKey{}).(*SessionManager)
	if !ok || manager == nil {
		return nil, false
	}
	return manager, true
}
