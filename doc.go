// Package estatekit is the client-side session core for the EstateOps
// property-management backend: a JSON request client with a uniform result
// envelope, token storage with legacy key aliasing, and a session state
// machine with persisted state and navigation side effects.
//
// The package is designed for concurrent callers: Client and SessionManager
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build].
//
// # Architecture boundaries
//
// estatekit is the public surface. It exposes [Client], [SessionManager],
// [Builder], [Config], and value types (Result, SessionSnapshot, UserProfile,
// etc.). Flow orchestration lives under internal/ and is never exported.
// Storage backends and token handling live in the storage and token
// subpackages.
//
// # What this package must NOT do
//
//   - Return a Go error from [Client.Do] or the verb wrappers. Transport and
//     HTTP failures are represented in the [Result] envelope, never raised.
//   - Retry, cache, coalesce, or time out requests. Each call is independent
//     and at-most-once; cancellation is the caller's context.
//   - Clear a previously established session on a failed login or refresh.
//     Only an explicit [SessionManager.Logout] tears a session down.
//
// # Failure contract
//
// Login and Register convert a failed envelope into a returned error carrying
// the backend's literal message, so UI code has a single error path. Logout
// cannot fail from the caller's perspective and RefreshUser degrades without
// mutating state. Using [FromContext] outside a [WithSession] scope is a
// programmer error and panics immediately.
package estatekit
