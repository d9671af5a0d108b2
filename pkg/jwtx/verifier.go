package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a raw compact JWT and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// Ed25519Verifier verifies EdDSA-signed identity tokens against a single
// public key shared out-of-band with the identity service.
type Ed25519Verifier struct {
	pub    ed25519.PublicKey
	issuer string
}

// NewEd25519Verifier builds a verifier. issuer, when non-empty, is enforced
// against the iss claim.
func NewEd25519Verifier(pub ed25519.PublicKey, issuer string) *Ed25519Verifier {
	return &Ed25519Verifier{pub: pub, issuer: issuer}
}

// NewEd25519VerifierFromPEM parses a PKIX PEM public key.
func NewEd25519VerifierFromPEM(pemBytes []byte, issuer string) (*Ed25519Verifier, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("jwtx: no PEM block found")
	}
	keyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to parse public key: %w", err)
	}
	pub, ok := keyInterface.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("jwtx: key is not Ed25519")
	}
	return NewEd25519Verifier(pub, issuer), nil
}

func (v *Ed25519Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.pub, nil
	}, opts...)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims, nil
}
