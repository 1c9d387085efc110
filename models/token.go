package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued by the remote file server.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims] for
// standard claim access. The "sub" claim carries the owner of the remote
// namespace the token grants access to.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Owner is a cached copy of the "sub" claim.
	Owner string `json:"-"`
}

// GetOwner returns the "sub" claim of the token.
func (t *Token) GetOwner() (string, error) {
	owner, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner from token: %w", err)
	}
	if owner == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return owner, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
