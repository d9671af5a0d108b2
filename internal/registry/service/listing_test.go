package service_test

import (
	"context"
	"testing"

	"github.com/broadvale/registry/internal/registry/service"
	"github.com/stretchr/testify/require"
)

func TestNamespaces(t *testing.T) {
	ctx := context.Background()

	t.Run("returns active names sorted ascending", func(t *testing.T) {
		f := newFixture(t)
		f.createNamespace(t, "zeta")
		f.createNamespace(t, "mu")

		// Retire the fixture's "acme" so the directory is exactly the trio
		f.createNamespace(t, "alpha")
		require.NoError(t, f.store.Namespaces().DeactivateNamespace(ctx, f.namespace.ID))

		names, err := f.listing.Namespaces(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "mu", "zeta"}, names)
	})

	t.Run("empty directory is fine", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Namespaces().DeactivateNamespace(ctx, f.namespace.ID))

		names, err := f.listing.Namespaces(ctx)
		require.NoError(t, err)
		require.Empty(t, names)
	})
}

func TestMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sorted active member names", func(t *testing.T) {
		f := newFixture(t)
		zoe := f.createUser(t, "zoe")
		f.activateMember(t, f.namespace.ID, zoe.ID)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		names, err := f.listing.Members(ctx, "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, []string{"alice", "bob", "zoe"}, names)
	})

	t.Run("pending invitees are not members", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		names, err := f.listing.Members(ctx, "acme", "npmjs")
		require.NoError(t, err)
		require.Equal(t, []string{"alice"}, names)
	})

	t.Run("unknown namespace is a not-found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.listing.Members(ctx, "ghost", "npmjs")
		require.ErrorIs(t, err, service.ErrNamespaceNotFound)
	})
}

func TestPendingMemberships(t *testing.T) {
	ctx := context.Background()

	t.Run("lists namespaces with an undecided invitation", func(t *testing.T) {
		f := newFixture(t)
		tools := f.createNamespace(t, "tools")
		f.activateMember(t, tools.ID, f.alice.ID)

		_, err := f.membership.Invite(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)
		_, err = f.membership.Invite(ctx, &f.alice, "bob", "tools", "npmjs")
		require.NoError(t, err)
		_, err = f.membership.Decline(ctx, &f.bob, "tools", "npmjs")
		require.NoError(t, err)

		pending, err := f.listing.PendingMemberships(ctx, &f.bob)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, "acme", pending[0].Name)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.listing.PendingMemberships(ctx, nil)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestMemberships(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sorted names of active memberships only", func(t *testing.T) {
		f := newFixture(t)
		tools := f.createNamespace(t, "tools")
		zlib := f.createNamespace(t, "zlib")
		f.activateMember(t, zlib.ID, f.alice.ID)
		f.activateMember(t, tools.ID, f.alice.ID)

		// A pending invite elsewhere must not show up
		f.activateMember(t, tools.ID, f.bob.ID)

		names, err := f.listing.Memberships(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, []string{"acme", "tools", "zlib"}, names)
	})

	t.Run("removed membership drops out", func(t *testing.T) {
		f := newFixture(t)
		f.activateMember(t, f.namespace.ID, f.bob.ID)

		_, err := f.membership.Remove(ctx, &f.alice, "bob", "acme", "npmjs")
		require.NoError(t, err)

		names, err := f.listing.Memberships(ctx, "bob")
		require.NoError(t, err)
		require.Empty(t, names)
	})

	t.Run("unknown user is a not-found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.listing.Memberships(ctx, "nobody")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
