package estatekit

import "errors"

var (
	// ErrClientNotReady is an exported constant or variable used by the session core.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrLoginFailed is an exported constant or variable used by the session core.
	ErrLoginFailed = errors.New("login failed")
	// ErrRegisterFailed is an exported constant or variable used by the session core.
	ErrRegisterFailed = errors.New("registration failed")
	// ErrSessionIntegrity is an exported constant or variable used by the session core.
	ErrSessionIntegrity = errors.New("login response missing required fields")
	// ErrRefreshFailed is an exported constant or variable used by the session core.
	ErrRefreshFailed = errors.New("user refresh failed")
	// ErrRequestFailed is an exported constant or variable used by the session core.
	ErrRequestFailed = errors.New("request failed")
	// ErrInvalidRole is an exported constant or variable used by the session core.
	ErrInvalidRole = errors.New("invalid role")
	// ErrBuilderReused is an exported constant or variable used by the session core.
	ErrBuilderReused = errors.New("builder already used")
)
