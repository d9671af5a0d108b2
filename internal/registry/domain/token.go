package domain

import "time"

// AuthToken is an opaque registry CLI token. Rows are minted by the identity
// subsystem; the registry only verifies presented secrets against SecretHash.
type AuthToken struct {
	ID         string
	UserID     string
	SecretHash string // argon2id PHC string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
