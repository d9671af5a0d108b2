package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) Get(ctx context.Context, namespaceID, userID string) (domain.NamespaceMember, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, namespace_id, user_id, status, created_at, updated_at
		FROM namespace_members
		WHERE namespace_id = ? AND user_id = ?`,
		namespaceID, userID,
	)

	var m domain.NamespaceMember
	var status string
	if err := row.Scan(&m.ID, &m.NamespaceID, &m.UserID, &status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.NamespaceMember{}, mapNotFound(err)
	}
	m.Status = domain.MembershipStatus(status)
	return m, nil
}

func (r *membersRepo) Create(ctx context.Context, m domain.NamespaceMember) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO namespace_members (id, namespace_id, user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.NamespaceID, m.UserID, string(m.Status), now, now,
	)
	return err
}

// UpdateStatus is the conditional update the membership state machine is built
// on. The WHERE predicate names the statuses the row must currently hold, so
// the losing side of a race always sees 0 rows affected.
func (r *membersRepo) UpdateStatus(
	ctx context.Context,
	namespaceID, userID string,
	from []domain.MembershipStatus,
	to domain.MembershipStatus,
) (int64, error) {
	if len(from) == 0 {
		return 0, fmt.Errorf("sqlite: conditional member update requires at least one source status")
	}
	for _, s := range from {
		if !s.CanTransition(to) {
			return 0, fmt.Errorf("sqlite: illegal membership transition %s -> %s", s, to)
		}
	}

	placeholders := strings.Repeat("?,", len(from))
	placeholders = placeholders[:len(placeholders)-1]

	args := []any{string(to), time.Now().UTC(), namespaceID, userID}
	for _, s := range from {
		args = append(args, string(s))
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE namespace_members
		SET status = ?, updated_at = ?
		WHERE namespace_id = ? AND user_id = ? AND status IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *membersRepo) ListActiveUsers(ctx context.Context, namespaceID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.active, u.created_at, u.updated_at
		FROM users u
		JOIN namespace_members m ON m.user_id = u.id
		WHERE m.namespace_id = ? AND m.status = 'active' AND u.active = 1`,
		namespaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
