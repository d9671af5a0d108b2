package service_test

import (
	"context"
	"testing"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/service"
	"github.com/stretchr/testify/require"
)

func TestInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending invitation", func(t *testing.T) {
		f := newFixture(t)

		msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob invited to join acme@npmjs.", msg)
		require.Equal(t, domain.MembershipPending, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("double invite is informational, not a duplicate row", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob has already been invited to join acme@npmjs.", msg)
		require.Equal(t, domain.MembershipPending, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("invite after accept reports existing membership", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		_, err = f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob is already a member of acme@npmjs.", msg)
	})

	t.Run("unknown invitee fails", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "nobody", "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("inactive invitee reads as unknown", func(t *testing.T) {
		f := newFixture(t)
		ghost := f.createUser(t, "ghost")
		require.NoError(t, f.store.Users().DeactivateUser(ctx, ghost.ID))

		_, err := f.membership.Invite(ctx, &f.alice, "ghost", "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("re-invite after removal reopens the same row", func(t *testing.T) {
		f := newFixture(t)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		_, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob invited to join acme@npmjs.", msg)
		require.Equal(t, domain.MembershipPending, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an active member", func(t *testing.T) {
		f := newFixture(t)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		msg, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob removed from acme@npmjs.", msg)
		require.Equal(t, domain.MembershipRemoved, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("removing a non-member is an informational no-op", func(t *testing.T) {
		f := newFixture(t)

		msg, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob was not a member of acme@npmjs.", msg)
	})

	t.Run("second removal is an informational no-op", func(t *testing.T) {
		f := newFixture(t)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		_, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob was not a member of acme@npmjs.", msg)
		require.Equal(t, domain.MembershipRemoved, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("a pending invite does not count as membership", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob was not a member of acme@npmjs.", msg)
		require.Equal(t, domain.MembershipPending, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("unknown user fails", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Remove(ctx, &f.alice, "nobody", "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestAccept(t *testing.T) {
	ctx := context.Background()

	t.Run("activates a pending invitation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob is now a member of acme@npmjs", msg)
		require.Equal(t, domain.MembershipActive, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("without an invitation fails", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrInvitationNotFound)
	})

	t.Run("second accept fails", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		_, err = f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
		require.NoError(t, err)

		_, err = f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrInvitationNotFound)
	})

	t.Run("unknown namespace reads as missing invitation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Accept(ctx, &f.bob, "ghost", "npmjs")
		require.ErrorIs(t, err, service.ErrInvitationNotFound)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Accept(ctx, nil, "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestDecline(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the invitation declined", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Decline(ctx, &f.bob, "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob declined the invitation to join acme@npmjs", msg)
		require.Equal(t, domain.MembershipDeclined, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("does not touch an active membership", func(t *testing.T) {
		f := newFixture(t)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		_, err := f.membership.Decline(ctx, &f.bob, "acme", "npmjs")
		require.ErrorIs(t, err, service.ErrInvitationNotFound)
		require.Equal(t, domain.MembershipActive, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})

	t.Run("declined invitations can be re-issued", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		_, err = f.membership.Decline(ctx, &f.bob, "acme", "npmjs")
		require.NoError(t, err)

		msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, "bob invited to join acme@npmjs.", msg)
		require.Equal(t, domain.MembershipPending, f.memberStatus(t, f.namespace.ID, f.bob.ID))
	})
}

// The full lifecycle from the membership walkthrough: invite, accept, remove,
// remove again.
func TestMembershipLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	msg, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
	require.NoError(t, err)
	require.Equal(t, "bob invited to join acme@npmjs.", msg)

	msg, err = f.membership.Accept(ctx, &f.bob, "acme", "npmjs")
	require.NoError(t, err)
	require.Equal(t, "bob is now a member of acme@npmjs", msg)

	msg, err = f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
	require.NoError(t, err)
	require.Equal(t, "bob removed from acme@npmjs.", msg)

	msg, err = f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
	require.NoError(t, err)
	require.Equal(t, "bob was not a member of acme@npmjs.", msg)
}
