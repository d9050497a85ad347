package usecase

import (
	"context"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// RoleService resolves the single role of a principal.
type RoleService interface {
	// ResolveRole returns ErrNoRole when the principal has no valid role and
	// ErrUnauthenticated when it no longer exists.
	ResolveRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, error)
	// Forget drops any cached role for userID.
	Forget(userID uuid.UUID)
}

type roleService struct {
	userRepo repository.UserRepository
	cache    *expirable.LRU[uuid.UUID, entity.UserRole]
	log      *zap.Logger
}

// NewRoleService caches resolved roles for cfg.TTL(). A non-positive TTL
// disables the cache.
func NewRoleService(userRepo repository.UserRepository, cfg utils.RoleCacheConfig, log *zap.Logger) RoleService {
	s := &roleService{
		userRepo: userRepo,
		log:      log,
	}
	if cfg.TTLSeconds > 0 {
		s.cache = expirable.NewLRU[uuid.UUID, entity.UserRole](cfg.Size, nil, cfg.TTL())
	}
	return s
}

func (s *roleService) ResolveRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, error) {
	if s.cache != nil {
		if role, ok := s.cache.Get(userID); ok {
			return role, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("resolve role of %s: %w", userID, err)
	}
	if user == nil || !user.IsActive {
		return "", fmt.Errorf("resolve role of %s: %w", userID, ErrUnauthenticated)
	}
	if !user.Role.Valid() {
		s.log.Warn("Principal has no valid role",
			zap.String("user_id", userID.String()),
			zap.String("role", string(user.Role)))
		return "", fmt.Errorf("resolve role of %s: %w", userID, ErrNoRole)
	}

	if s.cache != nil {
		s.cache.Add(userID, user.Role)
	}
	return user.Role, nil
}

func (s *roleService) Forget(userID uuid.UUID) {
	if s.cache != nil {
		s.cache.Remove(userID)
	}
}

// CheckRole returns ErrWrongRole unless role is one of allowed.
func CheckRole(role entity.UserRole, allowed ...entity.UserRole) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", role.Label(), ErrWrongRole)
}
