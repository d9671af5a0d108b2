package sqlite

import (
	"context"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetActiveByName(ctx context.Context, name string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, active, created_at, updated_at
		FROM users
		WHERE name = ? AND active = 1`,
		name,
	)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetActiveByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, active, created_at, updated_at
		FROM users
		WHERE id = ? AND active = 1`,
		id,
	)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Active, now, now,
	)
	return err
}

func (r *usersRepo) DeactivateUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return err
}
