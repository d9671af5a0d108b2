package domain

import "time"

// Host is the tenant scope under which namespace names are unique.
type Host struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
