package sqlite

import (
	"context"
	"time"

	"github.com/broadvale/registry/internal/registry/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) GetActiveByID(ctx context.Context, id string) (domain.AuthToken, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, secret_hash, active, created_at, updated_at
		FROM auth_tokens
		WHERE id = ? AND active = 1`,
		id,
	)

	var t domain.AuthToken
	if err := row.Scan(&t.ID, &t.UserID, &t.SecretHash, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.AuthToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.AuthToken) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (id, user_id, secret_hash, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.SecretHash, t.Active, now, now,
	)
	return err
}
