package domain

import "time"

type Namespace struct {
	ID        string
	Name      string
	HostID    string
	HostName  string // Joined in by the store; namespaces are always addressed as name@host
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref returns the canonical name@host form used in messages and routes.
func (n Namespace) Ref() string {
	return n.Name + "@" + n.HostName
}
