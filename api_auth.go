package estatekit

import "context"

const (
	pathLogin    = "/auth/login/"
	pathRegister = "/auth/register/"
	pathMe       = "/auth/me/"
	pathLogout   = "/auth/logout/"
)

// AuthAPI groups the authentication endpoints. Like every resource grouping
// it is a thin path table over the verb wrappers; session semantics live in
// [SessionManager].
type AuthAPI struct {
	client *Client
}

// Login describes the login operation and its observable behavior.
func (a *AuthAPI) Login(ctx context.Context, email, password string) Result {
	return a.client.Post(ctx, pathLogin, map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register describes the register operation and its observable behavior.
func (a *AuthAPI) Register(ctx context.Context, input RegisterInput) Result {
	return a.client.Post(ctx, pathRegister, input)
}

// Me fetches the current user record for the attached bearer token.
func (a *AuthAPI) Me(ctx context.Context) Result {
	return a.client.Get(ctx, pathMe)
}

// Logout notifies the backend. Intentionally body-less.
func (a *AuthAPI) Logout(ctx context.Context) Result {
	return a.client.Post(ctx, pathLogout, nil)
}

// loginPayload is the minimal shape a successful login/register response must
// carry. Older backend builds returned the token under access_token.
type loginPayload struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token"`
	User        *UserProfile `json:"user"`
	Role        Role         `json:"role"`
}

func (p *loginPayload) bearer() string {
	if p == nil {
		return ""
	}
	if p.Token != "" {
		return p.Token
	}
	return p.AccessToken
}

func (p *loginPayload) role() Role {
	if p == nil {
		return ""
	}
	if p.Role != "" {
		return p.Role
	}
	if p.User != nil {
		return p.User.Role
	}
	return ""
}
