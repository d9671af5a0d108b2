package domain

import "time"

// User is owned by the identity subsystem; the registry only reads it.
// Inactive users are soft-deleted and invisible to every lookup here.
type User struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
