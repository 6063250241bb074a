package flows

import (
	"context"
	"fmt"
)

// LoginPayload is the flow-local shape of a validated login response.
type LoginPayload struct {
	Token       string
	UserID      string
	Role        string
	ProfileJSON []byte
}

// LoginErrors carries host-level sentinel errors used by the login flow.
type LoginErrors struct {
	LoginFailed      error
	SessionIntegrity error
}

// LoginDeps captures login flow dependencies.
type LoginDeps struct {
	// CallLogin performs the backend call and decodes the payload. errMsg is
	// the backend's literal message when ok is false.
	CallLogin func(ctx context.Context, email, password string) (ok bool, payload *LoginPayload, errMsg string)
	// Persist writes the credential triplet and cached profile to storage.
	Persist func(payload *LoginPayload)

	Errors LoginErrors
}

// RunLogin executes the login flow: backend call, payload validation,
// persistence. The transition is all-or-nothing — a failed call or a payload
// missing its token or user id returns an error without persisting anything,
// so a previously good session is never partially overwritten.
func RunLogin(ctx context.Context, email, password string, deps LoginDeps) (*LoginPayload, error) {
	ok, payload, errMsg := deps.CallLogin(ctx, email, password)
	if !ok {
		return nil, fmt.Errorf("%w: %s", deps.Errors.LoginFailed, errMsg)
	}
	if payload == nil || payload.Token == "" || payload.UserID == "" {
		return nil, deps.Errors.SessionIntegrity
	}
	deps.Persist(payload)
	return payload, nil
}
