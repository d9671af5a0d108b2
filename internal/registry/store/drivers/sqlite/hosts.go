package sqlite

import (
	"context"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type hostsRepo struct {
	db dbtx
}

func (r *hostsRepo) GetByName(ctx context.Context, name string) (domain.Host, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, active, created_at, updated_at
		FROM hosts
		WHERE name = ?`,
		name,
	)

	var h domain.Host
	if err := row.Scan(&h.ID, &h.Name, &h.Active, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return domain.Host{}, mapNotFound(err)
	}
	return h, nil
}

func (r *hostsRepo) CreateHost(ctx context.Context, h domain.Host) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hosts (id, name, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Active, now, now,
	)
	return err
}

func (r *hostsRepo) DeactivateHost(ctx context.Context, hostID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE hosts SET active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), hostID,
	)
	return err
}
