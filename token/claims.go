package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the unverified view of a JWT bearer token. The session core only
// inspects claims client-side (expiry, subject); signature verification is
// the backend's job.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	HasExpiry bool
}

// Inspect parses tok without verifying its signature. ok is false when the
// token is not a JWT; opaque tokens are legal and simply carry no claims.
func Inspect(tok string) (Claims, bool) {
	parsed := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(StripBearer(tok), parsed); err != nil {
		return Claims{}, false
	}

	var out Claims
	if sub, err := parsed.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := parsed.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
		out.HasExpiry = true
	}
	return out, true
}

// Expired reports whether tok is a JWT whose exp claim has passed at now.
// Opaque tokens and JWTs without an exp claim are never considered expired.
func Expired(tok string, now time.Time) bool {
	claims, ok := Inspect(tok)
	if !ok || !claims.HasExpiry {
		return false
	}
	return now.After(claims.ExpiresAt)
}
