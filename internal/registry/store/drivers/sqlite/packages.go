package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type packagesRepo struct {
	db dbtx
}

func (r *packagesRepo) CreatePackage(ctx context.Context, p domain.Package) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO packages (id, name, namespace_id, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.NamespaceID, p.Active, now, now,
	)
	return err
}

func (r *packagesRepo) DeactivatePackage(ctx context.Context, packageID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE packages SET active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), packageID,
	)
	return err
}

// ListByMaintainerStatus projects packages that carry a maintainer grant for
// the namespace in the given status. The whole chain must be live: the
// package, its owning namespace, and that namespace's host.
func (r *packagesRepo) ListByMaintainerStatus(
	ctx context.Context,
	namespaceID string,
	status domain.MaintainerStatus,
) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.namespace_id, p.active, p.created_at, p.updated_at
		FROM packages p
		JOIN package_maintainers g ON g.package_id = p.id
		JOIN namespaces n ON n.id = p.namespace_id
		JOIN hosts h ON h.id = n.host_id
		WHERE g.namespace_id = ? AND g.status = ?
		  AND p.active = 1 AND n.active = 1 AND h.active = 1`,
		namespaceID, string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.NamespaceID, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

type maintainersRepo struct {
	db dbtx
}

func (r *maintainersRepo) Create(ctx context.Context, g domain.PackageMaintainer) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO package_maintainers (id, package_id, namespace_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.PackageID, g.NamespaceID, string(g.Status), now, now,
	)
	return err
}

func (r *maintainersRepo) UpdateStatus(
	ctx context.Context,
	packageID, namespaceID string,
	from []domain.MaintainerStatus,
	to domain.MaintainerStatus,
) (int64, error) {
	if len(from) == 0 {
		return 0, fmt.Errorf("sqlite: conditional maintainer update requires at least one source status")
	}

	placeholders := strings.Repeat("?,", len(from))
	placeholders = placeholders[:len(placeholders)-1]

	args := []any{string(to), time.Now().UTC(), packageID, namespaceID}
	for _, s := range from {
		args = append(args, string(s))
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE package_maintainers
		SET status = ?, updated_at = ?
		WHERE package_id = ? AND namespace_id = ? AND status IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
