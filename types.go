package estatekit

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role identifies which dashboard scope a user belongs to. The backend only
// issues roles from the closed set below.
//
//	Docs: docs/session.md
type Role string

const (
	// RoleOwner is an exported constant or variable used by the session core.
	RoleOwner Role = "owner"
	// RoleAgent is an exported constant or variable used by the session core.
	RoleAgent Role = "agent"
	// RoleCaretaker is an exported constant or variable used by the session core.
	RoleCaretaker Role = "caretaker"
	// RoleTenant is an exported constant or variable used by the session core.
	RoleTenant Role = "tenant"
	// RoleStaff is an exported constant or variable used by the session core.
	RoleStaff Role = "staff"
	// RoleAdmin is an exported constant or variable used by the session core.
	RoleAdmin Role = "admin"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch Role(strings.ToLower(string(r))) {
	case RoleOwner, RoleAgent, RoleCaretaker, RoleTenant, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// UserID is the backend user identifier. Historical API versions returned it
// as either a JSON number or a JSON string; both decode to the same value.
type UserID string

// UnmarshalJSON accepts a JSON string or number.
func (id *UserID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON renders the identifier as a JSON string.
func (id UserID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

// UserProfile is a normalized snapshot of the backend user record. It is
// replaced wholesale on each refresh, never partially patched.
type UserProfile struct {
	ID       UserID `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterInput carries the fields required by the registration endpoint.
//
// RegisterInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// SessionSnapshot is the read-only view handed to subscribers. IsAuthenticated
// is derived from Token and User and never set independently.
type SessionSnapshot struct {
	Token           string
	User            *UserProfile
	Role            Role
	IsLoading       bool
	IsAuthenticated bool
}

// Navigator receives the single post-logout redirect. Implementations must
// not block.
type Navigator interface {
	Push(path string)
}

// NoOpNavigator discards navigation calls.
//
// NoOpNavigator instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NoOpNavigator struct{}

// Push describes the push operation and its observable behavior.
func (NoOpNavigator) Push(string) {}

// FuncNavigator adapts a plain function to the [Navigator] interface.
type FuncNavigator func(path string)

// Push describes the push operation and its observable behavior.
func (f FuncNavigator) Push(path string) {
	if f != nil {
		f(path)
	}
}
