package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-management/internal/data/entity"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	role entity.UserRole
	err  error
}

func (s stubResolver) ResolveRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, error) {
	return s.role, s.err
}

type stubTokens string

func (s stubTokens) Token(r *http.Request) string { return string(s) }

type stubAuthenticator struct {
	principal *utils.Principal
	err       error
}

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*utils.Principal, error) {
	return s.principal, s.err
}

// okHandler records whether it ran.
func okHandler(ran *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*ran = true
		w.WriteHeader(http.StatusOK)
	})
}

func authenticatedRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := utils.SetPrincipalContext(req.Context(), utils.Principal{UserID: uuid.New(), Username: "alice"})
	return req.WithContext(ctx)
}

func TestRequireRole_Matrix(t *testing.T) {
	routes := []struct {
		name    string
		allowed []entity.UserRole
	}{
		{"admin only", []entity.UserRole{entity.RoleAdmin}},
		{"customer only", []entity.UserRole{entity.RoleCustomer}},
		{"both", []entity.UserRole{entity.RoleAdmin, entity.RoleCustomer}},
	}
	roles := []entity.UserRole{entity.RoleAdmin, entity.RoleCustomer}

	for _, route := range routes {
		for _, role := range roles {
			t.Run(fmt.Sprintf("%s/%s", route.name, role), func(t *testing.T) {
				var ran bool
				guard := RequireRole(stubResolver{role: role}, zap.NewNop(), route.allowed...)
				rec := httptest.NewRecorder()

				guard(okHandler(&ran)).ServeHTTP(rec, authenticatedRequest("/somewhere"))

				allowed := usecase.CheckRole(role, route.allowed...) == nil
				assert.Equal(t, allowed, ran)
				if allowed {
					assert.Equal(t, http.StatusOK, rec.Code)
				} else {
					assert.Equal(t, http.StatusFound, rec.Code)
					assert.Equal(t, RoleHome(role), rec.Header().Get("Location"))
				}
			})
		}
	}
}

func TestRequireRole_UnresolvableRoleLogsOut(t *testing.T) {
	cases := map[string]error{
		"no role":        fmt.Errorf("resolve: %w", usecase.ErrNoRole),
		"principal gone": fmt.Errorf("resolve: %w", usecase.ErrUnauthenticated),
		"lookup failure": errors.New("connection reset"),
	}

	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			var ran bool
			guard := AdminOnly(stubResolver{err: err}, zap.NewNop())
			rec := httptest.NewRecorder()

			guard(okHandler(&ran)).ServeHTTP(rec, authenticatedRequest("/"))

			assert.False(t, ran)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, LogoutURL, rec.Header().Get("Location"))
		})
	}
}

func TestRequireRole_WithoutPrincipal(t *testing.T) {
	var ran bool
	guard := AdminOnly(stubResolver{role: entity.RoleAdmin}, zap.NewNop())
	rec := httptest.NewRecorder()

	guard(okHandler(&ran)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, ran)
	assert.Equal(t, LoginURL, rec.Header().Get("Location"))
}

func TestRequireAuthenticated(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		var ran bool
		rec := httptest.NewRecorder()

		RequireAuthenticated(LoginURL)(okHandler(&ran)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user", nil))

		assert.False(t, ran)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, LoginURL, rec.Header().Get("Location"))
	})

	t.Run("authenticated passes", func(t *testing.T) {
		var ran bool
		rec := httptest.NewRecorder()

		RequireAuthenticated(LoginURL)(okHandler(&ran)).ServeHTTP(rec, authenticatedRequest("/user"))

		assert.True(t, ran)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireUnauthenticated(t *testing.T) {
	t.Run("authenticated is sent home", func(t *testing.T) {
		var ran bool
		rec := httptest.NewRecorder()

		RequireUnauthenticated("/")(okHandler(&ran)).ServeHTTP(rec, authenticatedRequest("/login"))

		assert.False(t, ran)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("anonymous passes", func(t *testing.T) {
		var ran bool
		rec := httptest.NewRecorder()

		RequireUnauthenticated("/")(okHandler(&ran)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.True(t, ran)
	})
}

func TestAuthenticate(t *testing.T) {
	principal := &utils.Principal{UserID: uuid.New(), Username: "alice"}

	capture := func(got *utils.Principal, authed *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := utils.GetPrincipalFromContext(r.Context())
			*authed = ok
			*got = p
		})
	}

	t.Run("valid token attaches the principal", func(t *testing.T) {
		var (
			got    utils.Principal
			authed bool
		)
		mw := Authenticate(stubTokens("tok"), stubAuthenticator{principal: principal}, zap.NewNop())
		mw(capture(&got, &authed)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.True(t, authed)
		assert.Equal(t, *principal, got)
	})

	t.Run("invalid token continues anonymously", func(t *testing.T) {
		var (
			got    utils.Principal
			authed bool
		)
		mw := Authenticate(stubTokens("tok"), stubAuthenticator{err: usecase.ErrUnauthenticated}, zap.NewNop())
		mw(capture(&got, &authed)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, authed)
	})

	t.Run("no cookie skips the lookup", func(t *testing.T) {
		var (
			got    utils.Principal
			authed bool
		)
		mw := Authenticate(stubTokens(""), stubAuthenticator{principal: principal}, zap.NewNop())
		mw(capture(&got, &authed)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, authed)
	})
}

func TestRecover(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	Recover(zap.NewNop())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
