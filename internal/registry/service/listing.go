package service

import (
	"context"
	"errors"
	"sort"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/store"
)

// ListingService covers the plain read paths: namespace directory, member
// rosters and a user's memberships.
type ListingService struct {
	Store store.Store
}

// Namespaces returns the names of all active namespaces, sorted ascending.
func (s *ListingService) Namespaces(ctx context.Context) ([]string, error) {
	names, err := s.Store.Namespaces().ListActiveNames(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Members returns the sorted names of a namespace's active members.
func (s *ListingService) Members(ctx context.Context, name, host string) ([]string, error) {
	ns, err := s.Store.Namespaces().GetActive(ctx, name, host)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNamespaceNotFound
		}
		return nil, err
	}

	users, err := s.Store.NamespaceMembers().ListActiveUsers(ctx, ns.ID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	sort.Strings(names)
	return names, nil
}

// PendingMemberships returns the active namespaces holding an undecided
// invitation for the caller.
func (s *ListingService) PendingMemberships(ctx context.Context, user *domain.User) ([]domain.Namespace, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return s.Store.Namespaces().ListActiveByMemberStatus(ctx, user.ID, domain.MembershipPending)
}

// Memberships returns the sorted names of active namespaces the named user is
// an active member of.
func (s *ListingService) Memberships(ctx context.Context, username string) ([]string, error) {
	user, err := s.Store.Users().GetActiveByName(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	namespaces, err := s.Store.Namespaces().ListActiveByMemberStatus(ctx, user.ID, domain.MembershipActive)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(namespaces))
	for _, ns := range namespaces {
		names = append(names, ns.Name)
	}
	sort.Strings(names)
	return names, nil
}
