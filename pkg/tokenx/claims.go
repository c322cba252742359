package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that does not have the expected
	// three-segment shape or whose claims segment cannot be decoded.
	ErrMalformed = errors.New("tokenx: malformed token")

	// ErrMissingSubject reports a structurally valid token without a "sub"
	// claim. We fail closed rather than return a half-populated user.
	ErrMissingSubject = errors.New("tokenx: missing subject claim")
)

// Claims are the access-token claims the Sweet Shop backend embeds. The
// backend is the authority on these fields; we only ever read them.
type Claims struct {
	jwt.RegisteredClaims

	// IsAdmin marks catalog-administration rights. Absent means false.
	IsAdmin bool `json:"is_admin"`
}

// User is the identity derived from a decoded token.
type User struct {
	Username string
	IsAdmin  bool
}

// parser performs no signature or claims validation. Decoding here is a UX
// optimization only; the server independently authorizes every request.
var parser = jwt.NewParser()

// Decode extracts the user identity from a bearer token without verifying
// its signature. Any structural failure returns ErrMalformed, and a token
// without a subject returns ErrMissingSubject.
func Decode(token string) (User, error) {
	claims, err := decodeClaims(token)
	if err != nil {
		return User{}, err
	}

	if claims.Subject == "" {
		return User{}, ErrMissingSubject
	}

	return User{
		Username: claims.Subject,
		IsAdmin:  claims.IsAdmin,
	}, nil
}

// IsValid reports whether the token decodes and its expiry is strictly in
// the future at the given instant. False on any decode failure or when the
// token carries no expiry at all.
func IsValid(token string, now time.Time) bool {
	claims, err := decodeClaims(token)
	if err != nil {
		return false
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.After(now)
}

func decodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformed
	}
	return claims, nil
}
