package flows

import (
	"context"
	"fmt"
)

// RegisterErrors carries host-level sentinel errors used by the register flow.
type RegisterErrors struct {
	RegisterFailed error
}

// RegisterDeps captures register flow dependencies.
type RegisterDeps struct {
	CallRegister func(ctx context.Context) (ok bool, errMsg string)
	// Login runs the full login flow with the registration credentials.
	// Registration alone never yields a session.
	Login func(ctx context.Context) error

	Errors RegisterErrors
}

// RunRegister executes registration followed by an immediate login. Login
// failure semantics apply transitively to the combined operation.
func RunRegister(ctx context.Context, deps RegisterDeps) error {
	ok, errMsg := deps.CallRegister(ctx)
	if !ok {
		return fmt.Errorf("%w: %s", deps.Errors.RegisterFailed, errMsg)
	}
	return deps.Login(ctx)
}
