package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/pkg/slogx"
)

// GuardService decides whether a caller may act on behalf of a namespace.
// Every mutating operation resolves its acting namespace through here and
// threads the result along explicitly; nothing is stashed on shared request
// state.
type GuardService struct {
	Store store.Store
}

// ResolveActingNamespace resolves the active namespace at (name, host) and
// verifies actor holds an active membership on it.
//
// A nil actor fails with ErrUnauthenticated. A missing namespace, an inactive
// one, and a live namespace the actor simply isn't a member of all fail with
// the same ErrForbidden.
func (s *GuardService) ResolveActingNamespace(
	ctx context.Context,
	actor *domain.User,
	name, host string,
) (domain.Namespace, error) {
	log := slogx.FromContext(ctx)

	if actor == nil {
		return domain.Namespace{}, ErrUnauthenticated
	}

	ns, err := s.Store.Namespaces().GetActiveWithActiveMember(ctx, name, host, actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("acting namespace denied",
				slog.String("user", actor.Name),
				slog.String("namespace", name),
				slog.String("host", host),
			)
			return domain.Namespace{}, ErrForbidden
		}
		log.Error("failed to resolve acting namespace", slog.Any("error", err))
		return domain.Namespace{}, err
	}

	return ns, nil
}
