package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("jwtx: token invalid")
	ErrTokenExpired = errors.New("jwtx: token expired")
)

// Claims are the registered claims the registry cares about. The identity
// service mints these tokens; the subject is the registry username.
type Claims struct {
	jwt.RegisteredClaims
}

// ValidateExpiry checks exp against the current time. jwt/v5 already enforces
// this during parsing; this exists for callers holding parsed claims.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil || c.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}
