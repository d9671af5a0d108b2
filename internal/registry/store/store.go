package store

import (
	"context"
	"errors"

	"github.com/broadvale/registry/internal/registry/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep the surface tidy and let tests swap in
// a single concern at a time.
type Store interface {
	Users() Users
	Hosts() Hosts
	Namespaces() Namespaces
	NamespaceMembers() NamespaceMembers
	Packages() Packages
	PackageMaintainers() PackageMaintainers
	AuthTokens() AuthTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. fn returning an error rolls the
	// transaction back; nil commits it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetActiveByName resolves an active user by unique name. Inactive users
	// are indistinguishable from absent ones.
	GetActiveByName(ctx context.Context, name string) (domain.User, error)

	// GetActiveByID resolves an active user by id (token authentication path).
	GetActiveByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the caller via ULID).
	// User records are owned by the identity subsystem; this exists for
	// bootstrap and test seeding.
	CreateUser(ctx context.Context, u domain.User) error

	// DeactivateUser soft-deletes a user.
	DeactivateUser(ctx context.Context, userID string) error
}

type Hosts interface {
	GetByName(ctx context.Context, name string) (domain.Host, error)
	CreateHost(ctx context.Context, h domain.Host) error
	// DeactivateHost soft-deletes a host; its namespaces drop out of every
	// maintainership projection.
	DeactivateHost(ctx context.Context, hostID string) error
}

type Namespaces interface {
	// GetActive resolves an active namespace by (name, host name).
	GetActive(ctx context.Context, name, host string) (domain.Namespace, error)

	// GetActiveWithActiveMember resolves an active namespace only when userID
	// holds an active membership on it. A miss deliberately does not say
	// whether the namespace exists.
	GetActiveWithActiveMember(ctx context.Context, name, host, userID string) (domain.Namespace, error)

	// ListActiveNames returns the names of all active namespaces, unordered.
	ListActiveNames(ctx context.Context) ([]string, error)

	// ListActiveByMemberStatus returns active namespaces on which userID has a
	// membership row in the given status.
	ListActiveByMemberStatus(ctx context.Context, userID string, status domain.MembershipStatus) ([]domain.Namespace, error)

	CreateNamespace(ctx context.Context, n domain.Namespace) error
	DeactivateNamespace(ctx context.Context, namespaceID string) error
}

type NamespaceMembers interface {
	// Get returns the membership row for the pair regardless of status.
	Get(ctx context.Context, namespaceID, userID string) (domain.NamespaceMember, error)

	// Create inserts a pending membership row.
	Create(ctx context.Context, m domain.NamespaceMember) error

	// UpdateStatus conditionally moves the pair's row from one of the given
	// statuses to another and stamps updated_at. It reports the number of rows
	// changed; concurrent writers racing on the same row see 0 on the losing
	// side. This predicate-gated update is the only mutation path, so the
	// at-most-one-active-row invariant never depends on in-process locking.
	UpdateStatus(ctx context.Context, namespaceID, userID string, from []domain.MembershipStatus, to domain.MembershipStatus) (int64, error)

	// ListActiveUsers returns the active users holding an active membership on
	// the namespace.
	ListActiveUsers(ctx context.Context, namespaceID string) ([]domain.User, error)
}

type Packages interface {
	CreatePackage(ctx context.Context, p domain.Package) error
	DeactivatePackage(ctx context.Context, packageID string) error

	// ListByMaintainerStatus returns active packages carrying a maintainer
	// grant for the namespace in the given status, restricted to packages
	// whose owning namespace and that namespace's host are both active.
	ListByMaintainerStatus(ctx context.Context, namespaceID string, status domain.MaintainerStatus) ([]domain.Package, error)
}

type PackageMaintainers interface {
	// Create inserts a maintainer grant. Grant issuance belongs to the package
	// subsystem; the registry core only projects grants.
	Create(ctx context.Context, g domain.PackageMaintainer) error

	// UpdateStatus conditionally moves a grant between statuses, mirroring the
	// membership CAS semantics.
	UpdateStatus(ctx context.Context, packageID, namespaceID string, from []domain.MaintainerStatus, to domain.MaintainerStatus) (int64, error)
}

type AuthTokens interface {
	// GetActiveByID fetches an active opaque token record for secret
	// verification.
	GetActiveByID(ctx context.Context, id string) (domain.AuthToken, error)

	// CreateToken inserts a token record (identity subsystem / test surface).
	CreateToken(ctx context.Context, t domain.AuthToken) error
}
