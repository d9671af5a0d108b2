package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/pkg/idx"
	"github.com/broadvale/registry/pkg/slogx"
)

// MembershipService runs the invite -> accept/decline -> remove lifecycle.
// All mutations go through predicate-gated updates, so re-running a completed
// transition is an informational no-op rather than an error; only a missing
// user or invitation is a hard failure.
type MembershipService struct {
	Store store.Store
	Guard *GuardService
}

// Invite invites a user to join a namespace. The actor must be an active
// member. Re-inviting someone with a live or pending membership returns an
// informational message instead of failing; a declined or removed row is
// reopened as a fresh pending invitation.
func (s *MembershipService) Invite(
	ctx context.Context,
	actor *domain.User,
	inviteeName, name, host string,
) (string, error) {
	log := slogx.FromContext(ctx)

	ns, err := s.Guard.ResolveActingNamespace(ctx, actor, name, host)
	if err != nil {
		return "", err
	}

	invitee, err := s.Store.Users().GetActiveByName(ctx, inviteeName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to resolve invitee", slog.Any("error", err))
		return "", err
	}

	var msg string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.NamespaceMembers().Get(ctx, ns.ID, invitee.ID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			// No row yet for this pair: a genuinely new invitation.
			member := domain.NamespaceMember{
				ID:          idx.New().String(),
				NamespaceID: ns.ID,
				UserID:      invitee.ID,
				Status:      domain.MembershipPending,
			}
			if err := tx.NamespaceMembers().Create(ctx, member); err != nil {
				return err
			}
			msg = fmt.Sprintf("%s invited to join %s.", invitee.Name, ns.Ref())
			return nil
		}

		switch existing.Status {
		case domain.MembershipActive:
			msg = fmt.Sprintf("%s is already a member of %s.", invitee.Name, ns.Ref())
		case domain.MembershipPending:
			msg = fmt.Sprintf("%s has already been invited to join %s.", invitee.Name, ns.Ref())
		default:
			// Declined or removed: reopen the pair's single row as pending.
			affected, err := tx.NamespaceMembers().UpdateStatus(ctx, ns.ID, invitee.ID,
				[]domain.MembershipStatus{domain.MembershipDeclined, domain.MembershipRemoved},
				domain.MembershipPending)
			if err != nil {
				return err
			}
			if affected == 0 {
				// Lost a race with another inviter; same outcome for the caller.
				msg = fmt.Sprintf("%s has already been invited to join %s.", invitee.Name, ns.Ref())
				return nil
			}
			msg = fmt.Sprintf("%s invited to join %s.", invitee.Name, ns.Ref())
		}
		return nil
	})
	if err != nil {
		log.Error("failed to record invitation", slog.Any("error", err))
		return "", err
	}

	log.Info("member invited",
		slog.String("invitee", invitee.Name),
		slog.String("namespace", ns.Name),
		slog.String("host", ns.HostName),
		slog.String("invited_by", actor.Name),
	)

	return msg, nil
}

// Remove revokes an active membership. Removing someone who is not an active
// member is an informational no-op; only an unknown user is an error.
func (s *MembershipService) Remove(
	ctx context.Context,
	actor *domain.User,
	inviteeName, name, host string,
) (string, error) {
	log := slogx.FromContext(ctx)

	ns, err := s.Guard.ResolveActingNamespace(ctx, actor, name, host)
	if err != nil {
		return "", err
	}

	invitee, err := s.Store.Users().GetActiveByName(ctx, inviteeName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to resolve member", slog.Any("error", err))
		return "", err
	}

	affected, err := s.Store.NamespaceMembers().UpdateStatus(ctx, ns.ID, invitee.ID,
		[]domain.MembershipStatus{domain.MembershipActive}, domain.MembershipRemoved)
	if err != nil {
		log.Error("failed to remove member", slog.Any("error", err))
		return "", err
	}

	if affected == 0 {
		return fmt.Sprintf("%s was not a member of %s.", invitee.Name, ns.Ref()), nil
	}

	log.Info("member removed",
		slog.String("member", invitee.Name),
		slog.String("namespace", ns.Name),
		slog.String("host", ns.HostName),
		slog.String("removed_by", actor.Name),
	)

	return fmt.Sprintf("%s removed from %s.", invitee.Name, ns.Ref()), nil
}

// Accept activates the caller's pending invitation. Only authentication is
// required; the invitee is by definition not a member yet.
func (s *MembershipService) Accept(
	ctx context.Context,
	user *domain.User,
	name, host string,
) (string, error) {
	log := slogx.FromContext(ctx)

	ns, err := s.resolveInvitationNamespace(ctx, user, name, host)
	if err != nil {
		return "", err
	}

	affected, err := s.Store.NamespaceMembers().UpdateStatus(ctx, ns.ID, user.ID,
		[]domain.MembershipStatus{domain.MembershipPending}, domain.MembershipActive)
	if err != nil {
		log.Error("failed to accept invitation", slog.Any("error", err))
		return "", err
	}
	if affected == 0 {
		return "", ErrInvitationNotFound
	}

	log.Info("invitation accepted",
		slog.String("user", user.Name),
		slog.String("namespace", ns.Name),
		slog.String("host", ns.HostName),
	)

	return fmt.Sprintf("%s is now a member of %s", user.Name, ns.Ref()), nil
}

// Decline resolves the caller's pending invitation to a terminal declined
// state. The row is kept for audit; active memberships are never touched.
func (s *MembershipService) Decline(
	ctx context.Context,
	user *domain.User,
	name, host string,
) (string, error) {
	log := slogx.FromContext(ctx)

	ns, err := s.resolveInvitationNamespace(ctx, user, name, host)
	if err != nil {
		return "", err
	}

	affected, err := s.Store.NamespaceMembers().UpdateStatus(ctx, ns.ID, user.ID,
		[]domain.MembershipStatus{domain.MembershipPending}, domain.MembershipDeclined)
	if err != nil {
		log.Error("failed to decline invitation", slog.Any("error", err))
		return "", err
	}
	if affected == 0 {
		return "", ErrInvitationNotFound
	}

	log.Info("invitation declined",
		slog.String("user", user.Name),
		slog.String("namespace", ns.Name),
		slog.String("host", ns.HostName),
	)

	return fmt.Sprintf("%s declined the invitation to join %s", user.Name, ns.Ref()), nil
}

// resolveInvitationNamespace is the shared accept/decline preamble. A missing
// namespace reads the same as a missing invitation to the caller.
func (s *MembershipService) resolveInvitationNamespace(
	ctx context.Context,
	user *domain.User,
	name, host string,
) (domain.Namespace, error) {
	if user == nil {
		return domain.Namespace{}, ErrUnauthenticated
	}

	ns, err := s.Store.Namespaces().GetActive(ctx, name, host)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Namespace{}, ErrInvitationNotFound
		}
		return domain.Namespace{}, err
	}
	return ns, nil
}
