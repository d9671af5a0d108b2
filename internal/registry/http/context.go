package http

import (
	"context"

	"github.com/broadvale/registry/internal/registry/domain"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// userFrom returns the authenticated caller, or nil for anonymous requests.
func userFrom(ctx context.Context) *domain.User {
	if u, ok := ctx.Value(ctxKeyUser).(*domain.User); ok {
		return u
	}
	return nil
}
