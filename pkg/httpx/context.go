package httpx

import "context"

type ctxKey string

// CtxKeyUsername carries the authenticated caller's username, set by the
// application's authentication middleware and read by rate limiting.
const CtxKeyUsername ctxKey = "username"

func usernameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
