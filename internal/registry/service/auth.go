package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/pkg/cryptox"
	"github.com/broadvale/registry/pkg/jwtx"
	"github.com/broadvale/registry/pkg/slogx"
)

// ErrInvalidToken reports a bearer credential that could not be resolved to an
// active user. Callers treat the request as anonymous; the guard produces the
// user-facing refusal.
var ErrInvalidToken = errors.New("invalid bearer token")

// AuthService resolves a presented bearer credential to an active user.
// Two forms are accepted: JWTs minted by the identity service (two dots) and
// opaque CLI tokens of the form id.secret. Minting either is not this
// service's business.
type AuthService struct {
	Store store.Store

	// Verifier validates identity-service JWTs. Nil disables the JWT path.
	Verifier jwtx.Verifier
}

// ResolveBearer maps a raw bearer token to the active user it represents.
func (s *AuthService) ResolveBearer(ctx context.Context, raw string) (domain.User, error) {
	if strings.Count(raw, ".") == 2 {
		return s.resolveJWT(ctx, raw)
	}
	return s.resolveOpaque(ctx, raw)
}

func (s *AuthService) resolveJWT(ctx context.Context, raw string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if s.Verifier == nil {
		return domain.User{}, ErrInvalidToken
	}

	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		log.Warn("jwt verification failed", slog.Any("error", err))
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetActiveByName(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) resolveOpaque(ctx context.Context, raw string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	id, secret, ok := strings.Cut(raw, ".")
	if !ok || id == "" || secret == "" {
		return domain.User{}, ErrInvalidToken
	}

	token, err := s.Store.AuthTokens().GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifySecret(secret, token.SecretHash); err != nil {
		log.Warn("token secret mismatch", slog.String("token_id", id))
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetActiveByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	return user, nil
}
