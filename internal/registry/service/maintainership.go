package service

import (
	"context"
	"errors"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/store"
)

// MaintainershipService projects package-maintainer grants for a namespace.
// Read-only; grant issuance lives with the package subsystem.
type MaintainershipService struct {
	Store store.Store
	Guard *GuardService
}

// Pending lists packages with an unconfirmed maintainer grant for the
// namespace. Pending grants are mutation-adjacent (they are offers waiting on
// a decision), so the caller must be an active member.
func (s *MaintainershipService) Pending(
	ctx context.Context,
	actor *domain.User,
	name, host string,
) ([]domain.Package, error) {
	ns, err := s.Guard.ResolveActingNamespace(ctx, actor, name, host)
	if err != nil {
		return nil, err
	}

	return s.Store.Packages().ListByMaintainerStatus(ctx, ns.ID, domain.MaintainerPending)
}

// Confirmed lists packages the namespace actively co-maintains. Maintainer
// records are namespace-public, so this only needs the namespace to exist.
func (s *MaintainershipService) Confirmed(
	ctx context.Context,
	name, host string,
) ([]domain.Package, error) {
	ns, err := s.Store.Namespaces().GetActive(ctx, name, host)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNamespaceNotFound
		}
		return nil, err
	}

	return s.Store.Packages().ListByMaintainerStatus(ctx, ns.ID, domain.MaintainerActive)
}
