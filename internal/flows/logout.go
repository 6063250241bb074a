package flows

import "context"

// LogoutDeps captures logout flow dependencies.
type LogoutDeps struct {
	// NotifyBackend is the optional best-effort backend call. Its result is
	// ignored; it runs first, while the bearer token is still resolvable.
	NotifyBackend func(ctx context.Context)
	ClearStorage  func()
	ResetState    func()
	Navigate      func()
}

// RunLogout tears the session down. Ordering is load-bearing: storage is
// cleared before the redirect fires, so a caller that lands on the login
// route and immediately re-reads storage never observes a stale token.
// The flow cannot fail.
func RunLogout(ctx context.Context, deps LogoutDeps) {
	if deps.NotifyBackend != nil {
		deps.NotifyBackend(ctx)
	}
	deps.ClearStorage()
	deps.ResetState()
	deps.Navigate()
}
