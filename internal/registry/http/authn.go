package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/broadvale/registry/internal/registry/service"
	"github.com/broadvale/registry/pkg/httpx"
	"github.com/broadvale/registry/pkg/slogx"
)

// authnMiddleware resolves an optional bearer token to an active user and
// attaches it to the request context. Requests without a token, or with a
// token that does not resolve, continue as anonymous; the guard in the
// service layer owns the refusal, so failed authentication never
// distinguishes itself here. Store failures still surface as 500s.
func authnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.ResolveBearer(ctx, raw)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) {
					log.Warn("bearer token rejected, continuing as anonymous")
					next.ServeHTTP(w, r)
					return
				}
				log.Error("failed to resolve bearer token", slog.Any("error", err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx = context.WithValue(ctx, ctxKeyUser, &user)
			ctx = context.WithValue(ctx, httpx.CtxKeyUsername, user.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
