package flows

import (
	"context"
	"fmt"
)

// RefreshErrors carries host-level sentinel errors used by the refresh flow.
type RefreshErrors struct {
	RefreshFailed error
}

// RefreshDeps captures refresh flow dependencies.
type RefreshDeps struct {
	// HasToken gates the backend call; without a token the flow must not
	// reach the network at all.
	HasToken func() bool
	CallMe   func(ctx context.Context) (ok bool, profileJSON []byte, errMsg string)
	// Replace swaps the in-memory profile wholesale.
	Replace func(profileJSON []byte) error
	// Skipped is invoked on the no-token no-op path.
	Skipped func()

	Errors RefreshErrors
}

// RunRefresh re-fetches the current user. Without a token it is a no-op.
// On failure the existing session state stays untouched — a failed refresh
// never logs the user out.
func RunRefresh(ctx context.Context, deps RefreshDeps) error {
	if !deps.HasToken() {
		if deps.Skipped != nil {
			deps.Skipped()
		}
		return nil
	}
	ok, profileJSON, errMsg := deps.CallMe(ctx)
	if !ok {
		return fmt.Errorf("%w: %s", deps.Errors.RefreshFailed, errMsg)
	}
	return deps.Replace(profileJSON)
}
