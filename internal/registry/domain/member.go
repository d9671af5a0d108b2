package domain

import "time"

// MembershipStatus is the lifecycle state of a namespace membership. The old
// schema tracked this as an (accepted, active) boolean pair, which admitted the
// nonsense combination accepted+inactive for two different reasons (removed vs
// declined); the enum keeps those apart and makes the legal moves checkable.
type MembershipStatus string

const (
	// MembershipPending is an invitation the user has not decided on.
	MembershipPending MembershipStatus = "pending"
	// MembershipActive grants the user full member rights on the namespace.
	MembershipActive MembershipStatus = "active"
	// MembershipDeclined is a turned-down invitation, kept for audit.
	MembershipDeclined MembershipStatus = "declined"
	// MembershipRemoved is a revoked membership, kept for audit.
	MembershipRemoved MembershipStatus = "removed"
)

// Valid reports whether s is one of the defined statuses.
func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipDeclined, MembershipRemoved:
		return true
	}
	return false
}

// CanTransition reports whether moving a membership from one status to another
// is a legal state-machine edge. Declined and removed rows only ever move back
// to pending, which is how a fresh invite reuses the single row per
// (namespace, user) pair.
func (s MembershipStatus) CanTransition(to MembershipStatus) bool {
	switch s {
	case MembershipPending:
		return to == MembershipActive || to == MembershipDeclined || to == MembershipRemoved
	case MembershipActive:
		return to == MembershipRemoved
	case MembershipDeclined, MembershipRemoved:
		return to == MembershipPending
	}
	return false
}

// NamespaceMember joins one user to one namespace. There is at most one row
// per (NamespaceID, UserID) pair; UpdatedAt doubles as the modification stamp
// the audit trail relies on.
type NamespaceMember struct {
	ID          string
	NamespaceID string
	UserID      string
	Status      MembershipStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
