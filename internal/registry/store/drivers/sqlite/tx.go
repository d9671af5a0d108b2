package sqlite

import (
	"context"
	"database/sql"

	"github.com/broadvale/registry/internal/registry/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; the outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                           { return &usersRepo{db: t.tx} }
func (t *txStore) Hosts() store.Hosts                           { return &hostsRepo{db: t.tx} }
func (t *txStore) Namespaces() store.Namespaces                 { return &namespacesRepo{db: t.tx} }
func (t *txStore) NamespaceMembers() store.NamespaceMembers     { return &membersRepo{db: t.tx} }
func (t *txStore) Packages() store.Packages                     { return &packagesRepo{db: t.tx} }
func (t *txStore) PackageMaintainers() store.PackageMaintainers { return &maintainersRepo{db: t.tx} }
func (t *txStore) AuthTokens() store.AuthTokens                 { return &tokensRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations run before any tx starts
