package middleware

import (
	"context"
	"errors"
	"net/http"

	"order-management/internal/data/entity"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LoginURL  = "/login"
	LogoutURL = "/logout"
)

// TokenSource reads the session token carried by the request.
type TokenSource interface {
	Token(r *http.Request) string
}

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.Principal, error)
}

type RoleResolver interface {
	ResolveRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, error)
}

// RoleHome is where a principal lands after login and when it opens a page
// reserved for another role.
func RoleHome(role entity.UserRole) string {
	if role == entity.RoleCustomer {
		return "/user"
	}
	return "/"
}

// Authenticate attaches the principal and its token to the request context.
// Requests without a valid session continue anonymously.
func Authenticate(tokens TokenSource, auth SessionAuthenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokens.Token(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, usecase.ErrUnauthenticated) {
					logger.Error("Failed to validate session", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), *principal)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUnauthenticated sends logged-in principals to home.
func RequireUnauthenticated(home string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if utils.IsAuthenticated(r.Context()) {
				utils.Redirect(w, r, home)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthenticated sends anonymous requests to loginURL.
func RequireAuthenticated(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.IsAuthenticated(r.Context()) {
				utils.Redirect(w, r, loginURL)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole lets the request through only when the principal's role is
// one of allowed. A principal with another role is sent to its own home; one
// whose role cannot be resolved is logged out.
func RequireRole(resolver RoleResolver, logger *zap.Logger, allowed ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				utils.Redirect(w, r, LoginURL)
				return
			}

			role, err := resolver.ResolveRole(r.Context(), principal.UserID)
			if err != nil {
				if errors.Is(err, usecase.ErrNoRole) || errors.Is(err, usecase.ErrUnauthenticated) {
					logger.Warn("Access denied: role unresolved",
						zap.Error(err),
						zap.String("user_id", principal.UserID.String()),
						zap.String("path", r.URL.Path))
				} else {
					logger.Error("Access denied: role lookup failed",
						zap.Error(err),
						zap.String("user_id", principal.UserID.String()),
						zap.String("path", r.URL.Path))
				}
				utils.Redirect(w, r, LogoutURL)
				return
			}

			if err := usecase.CheckRole(role, allowed...); err != nil {
				logger.Warn("Access denied",
					zap.Error(err),
					zap.String("user_id", principal.UserID.String()),
					zap.String("path", r.URL.Path))
				utils.Redirect(w, r, RoleHome(role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly - shorthand untuk halaman admin
func AdminOnly(resolver RoleResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(resolver, logger, entity.RoleAdmin)
}
