package sqlite

import (
	"context"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type namespacesRepo struct {
	db dbtx
}

const namespaceColumns = `
	n.id, n.name, n.host_id, h.name, n.active, n.created_at, n.updated_at`

func scanNamespace(row interface{ Scan(...any) error }) (domain.Namespace, error) {
	var n domain.Namespace
	err := row.Scan(&n.ID, &n.Name, &n.HostID, &n.HostName, &n.Active, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (r *namespacesRepo) GetActive(ctx context.Context, name, host string) (domain.Namespace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+namespaceColumns+`
		FROM namespaces n
		JOIN hosts h ON h.id = n.host_id
		WHERE n.name = ? AND h.name = ? AND n.active = 1`,
		name, host,
	)

	n, err := scanNamespace(row)
	if err != nil {
		return domain.Namespace{}, mapNotFound(err)
	}
	return n, nil
}

func (r *namespacesRepo) GetActiveWithActiveMember(ctx context.Context, name, host, userID string) (domain.Namespace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+namespaceColumns+`
		FROM namespaces n
		JOIN hosts h ON h.id = n.host_id
		JOIN namespace_members m ON m.namespace_id = n.id
		WHERE n.name = ? AND h.name = ? AND n.active = 1
		  AND m.user_id = ? AND m.status = 'active'`,
		name, host, userID,
	)

	n, err := scanNamespace(row)
	if err != nil {
		return domain.Namespace{}, mapNotFound(err)
	}
	return n, nil
}

func (r *namespacesRepo) ListActiveNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM namespaces WHERE active = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *namespacesRepo) ListActiveByMemberStatus(ctx context.Context, userID string, status domain.MembershipStatus) ([]domain.Namespace, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+namespaceColumns+`
		FROM namespaces n
		JOIN hosts h ON h.id = n.host_id
		JOIN namespace_members m ON m.namespace_id = n.id
		WHERE m.user_id = ? AND m.status = ? AND n.active = 1`,
		userID, string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var namespaces []domain.Namespace
	for rows.Next() {
		n, err := scanNamespace(rows)
		if err != nil {
			return nil, err
		}
		namespaces = append(namespaces, n)
	}
	return namespaces, rows.Err()
}

func (r *namespacesRepo) CreateNamespace(ctx context.Context, n domain.Namespace) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO namespaces (id, name, host_id, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Name, n.HostID, n.Active, now, now,
	)
	return err
}

func (r *namespacesRepo) DeactivateNamespace(ctx context.Context, namespaceID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE namespaces SET active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), namespaceID,
	)
	return err
}
