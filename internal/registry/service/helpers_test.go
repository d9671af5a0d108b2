package service_test

import (
	"context"
	"testing"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/service"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/internal/registry/store/drivers/sqlite"
	"github.com/broadvale/registry/pkg/idx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store store.Store

	guard      *service.GuardService
	membership *service.MembershipService
	maintainer *service.MaintainershipService
	listing    *service.ListingService
	host       domain.Host
	namespace  domain.Namespace
	alice      domain.User // active member of namespace
	bob        domain.User // no membership yet
}

// newFixture seeds the canonical scenario: namespace acme@npmjs with
// alice as an active member and bob as a bystander.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	f := &fixture{store: st}
	f.guard = &service.GuardService{Store: st}
	f.membership = &service.MembershipService{Store: st, Guard: f.guard}
	f.maintainer = &service.MaintainershipService{Store: st, Guard: f.guard}
	f.listing = &service.ListingService{Store: st}

	f.host = domain.Host{ID: idx.New().String(), Name: "npmjs", Active: true}
	require.NoError(t, st.Hosts().CreateHost(ctx, f.host))

	f.namespace = domain.Namespace{
		ID: idx.New().String(), Name: "acme", HostID: f.host.ID, Active: true,
	}
	require.NoError(t, st.Namespaces().CreateNamespace(ctx, f.namespace))

	f.alice = f.createUser(t, "alice")
	f.bob = f.createUser(t, "bob")

	f.activateMember(t, f.namespace.ID, f.alice.ID)

	return f
}

func (f *fixture) createUser(t *testing.T, name string) domain.User {
	t.Helper()
	u := domain.User{ID: idx.New().String(), Name: name, Active: true}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) createNamespace(t *testing.T, name string) domain.Namespace {
	t.Helper()
	ns := domain.Namespace{ID: idx.New().String(), Name: name, HostID: f.host.ID, Active: true}
	require.NoError(t, f.store.Namespaces().CreateNamespace(context.Background(), ns))
	return ns
}

// activateMember seeds an already-accepted membership without going through
// the invite flow.
func (f *fixture) activateMember(t *testing.T, namespaceID, userID string) {
	t.Helper()
	ctx := context.Background()

	member := domain.NamespaceMember{
		ID:          idx.New().String(),
		NamespaceID: namespaceID,
		UserID:      userID,
		Status:      domain.MembershipPending,
	}
	require.NoError(t, f.store.NamespaceMembers().Create(ctx, member))

	affected, err := f.store.NamespaceMembers().UpdateStatus(ctx, namespaceID, userID,
		[]domain.MembershipStatus{domain.MembershipPending}, domain.MembershipActive)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}

func (f *fixture) memberStatus(t *testing.T, namespaceID, userID string) domain.MembershipStatus {
	t.Helper()
	m, err := f.store.NamespaceMembers().Get(context.Background(), namespaceID, userID)
	require.NoError(t, err)
	return m.Status
}

func (f *fixture) createPackage(t *testing.T, name, namespaceID string, active bool) domain.Package {
	t.Helper()
	p := domain.Package{ID: idx.New().String(), Name: name, NamespaceID: namespaceID, Active: active}
	require.NoError(t, f.store.Packages().CreatePackage(context.Background(), p))
	return p
}

func (f *fixture) grantMaintainer(t *testing.T, packageID, namespaceID string, status domain.MaintainerStatus) {
	t.Helper()
	g := domain.PackageMaintainer{
		ID:          idx.New().String(),
		PackageID:   packageID,
		NamespaceID: namespaceID,
		Status:      status,
	}
	require.NoError(t, f.store.PackageMaintainers().Create(context.Background(), g))
}
