package domain

import "time"

type Package struct {
	ID          string
	Name        string
	NamespaceID string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MaintainerStatus is the lifecycle state of a namespace-level maintainer
// grant on a package. Pending grants are offers the namespace has not
// confirmed yet.
type MaintainerStatus string

const (
	MaintainerPending MaintainerStatus = "pending"
	MaintainerActive  MaintainerStatus = "active"
	MaintainerRemoved MaintainerStatus = "removed"
)

func (s MaintainerStatus) Valid() bool {
	switch s {
	case MaintainerPending, MaintainerActive, MaintainerRemoved:
		return true
	}
	return false
}

// PackageMaintainer grants co-maintainership of a package to a namespace.
// Maintainership is namespace-level, independent of namespace membership.
type PackageMaintainer struct {
	ID          string
	PackageID   string
	NamespaceID string
	Status      MaintainerStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
