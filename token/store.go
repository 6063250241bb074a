package token

import (
	"strings"

	"github.com/estateops/estatekit/storage"
)

const (
	// KeyPrimary is the canonical token key. New code reads and writes here.
	KeyPrimary = "auth_token"
	// KeyUserID is an exported constant or variable used by the token store.
	KeyUserID = "user_id"
	// KeyRole is an exported constant or variable used by the token store.
	KeyRole = "role"
	// KeyProfile holds the cached user profile JSON.
	KeyProfile = "auth_user"

	keyShortAlias  = "token"
	keyAccessAlias = "access_token"

	bearerPrefix = "Bearer "
)

// readOrder is the fixed fallback priority for token reads: the canonical
// key wins over either alias.
var readOrder = []string{KeyPrimary, keyShortAlias, keyAccessAlias}

// clearKeys is every key a credential could have been written under,
// including the legacy user_id/role keys and the cached profile.
var clearKeys = []string{KeyPrimary, keyShortAlias, keyAccessAlias, KeyUserID, KeyRole, KeyProfile}

// Stored is the persisted credential triplet.
//
// Stored instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Stored struct {
	Token  string
	UserID string
	Role   string
}

// Store is the single owner of credential persistence. All reads and writes
// of token material go through it; nothing else touches the alias keys.
type Store struct {
	backend storage.Storage
}

// NewStore describes the newstore operation and its observable behavior.
func NewStore(backend storage.Storage) *Store {
	return &Store{backend: backend}
}

// Save persists the triplet. The token is written under the canonical key and
// both legacy aliases so every historical lookup path resolves it.
func (s *Store) Save(t Stored) {
	raw := StripBearer(t.Token)
	s.backend.Set(KeyPrimary, raw)
	s.backend.Set(keyShortAlias, raw)
	s.backend.Set(keyAccessAlias, raw)
	s.backend.Set(KeyUserID, t.UserID)
	s.backend.Set(KeyRole, t.Role)
}

// Load reads the triplet back. The token resolves through the fixed priority
// order; ok is false when no key holds a token.
func (s *Store) Load() (Stored, bool) {
	tok, ok := s.Token()
	if !ok {
		return Stored{}, false
	}
	userID, _ := s.backend.Get(KeyUserID)
	role, _ := s.backend.Get(KeyRole)
	return Stored{Token: tok, UserID: userID, Role: role}, true
}

// Token resolves just the bearer token through the priority order.
func (s *Store) Token() (string, bool) {
	for _, key := range readOrder {
		if value, ok := s.backend.Get(key); ok && value != "" {
			return StripBearer(value), true
		}
	}
	return "", false
}

// Clear removes every known credential key. Best-effort per key; from the
// caller's perspective the clear always succeeds.
func (s *Store) Clear() {
	for _, key := range clearKeys {
		s.backend.Remove(key)
	}
}

// SaveProfile caches the user profile JSON alongside the credentials.
func (s *Store) SaveProfile(raw []byte) {
	s.backend.Set(KeyProfile, string(raw))
}

// Profile returns the cached profile JSON, if any.
func (s *Store) Profile() ([]byte, bool) {
	value, ok := s.backend.Get(KeyProfile)
	if !ok || value == "" {
		return nil, false
	}
	return []byte(value), true
}

// StripBearer removes a leading "Bearer " scheme from a token value, so only
// raw tokens are ever stored.
func StripBearer(tok string) string {
	if strings.HasPrefix(tok, bearerPrefix) {
		return strings.TrimSpace(tok[len(bearerPrefix):])
	}
	return tok
}

// BearerHeader renders the Authorization header value for a stored token,
// never double-prefixing a value that already carried the scheme.
func BearerHeader(tok string) string {
	return bearerPrefix + StripBearer(tok)
}
