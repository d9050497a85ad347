package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	usernameTaken = "A user with that username already exists."
	emailTaken    = "A user with that email already exists."
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate turns a session token into the principal it belongs to.
	// Unknown, expired or revoked tokens yield ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*utils.Principal, error)
	CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error)
	SetRole(ctx context.Context, req *request.SetRoleRequest) error
}

type authService struct {
	repo    *repository.Repository // grouping userRepo, sessionRepo & customerRepo
	session utils.SessionConfig
	roles   RoleService
	log     *zap.Logger
	now     func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	session utils.SessionConfig,
	roles RoleService,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		session: session,
		roles:   roles,
		log:     log,
		now:     time.Now,
	}
}

// Register creates a Customer principal together with its customer profile.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	if err := s.checkAvailable(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password1)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	customer := &entity.Customer{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: &user.ID,
		Name:   user.Username,
		Email:  user.Email,
	}

	if err := s.repo.User.CreateWithCustomer(ctx, user, customer); err != nil {
		if ve := duplicateUserError(err); ve != nil {
			return nil, ve
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	// Coba cari by email, lalu by username
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrInactive
	}

	// set-role runs in another process; a new login re-reads the stored role.
	s.roles.Forget(user.ID)

	session, err := s.createSession(ctx, user.ID, req.UserAgent, req.IPAddress)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

// Logout revokes the session behind token. Tokens that are malformed or
// already revoked are ignored.
func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to logout: %w", err)
	}

	s.log.Info("User logged out", zap.String("token", tokenUUID.String()))
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*utils.Principal, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if !session.IsValid(s.now()) {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find session user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthenticated
	}

	return &utils.Principal{UserID: user.ID, Username: user.Username}, nil
}

// CreateAdmin creates an Admin principal. Admins have no customer profile.
func (s *authService) CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if err := s.checkAvailable(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if ve := duplicateUserError(err); ve != nil {
			return nil, ve
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.log.Info("Admin created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// SetRole changes a principal's role (an empty role removes it) and revokes
// its sessions so the change applies on the next login.
func (s *authService) SetRole(ctx context.Context, req *request.SetRoleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return notFound("user", req.Username)
	}

	role := entity.UserRole(req.Role)
	if err := s.repo.User.UpdateRole(ctx, user.ID, role); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("user", req.Username)
		}
		return fmt.Errorf("failed to update role: %w", err)
	}
	s.roles.Forget(user.ID)

	revoked, err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.log.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("from", string(user.Role)),
		zap.String("to", string(role)),
		zap.Int64("sessions_revoked", revoked))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) checkAvailable(ctx context.Context, username, email string) error {
	existing, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return fieldError("username", usernameTaken)
	}

	existing, err = s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return fieldError("email", emailTaken)
	}

	return nil
}

// duplicateUserError maps a unique violation lost to a concurrent signup
// onto the same field error checkAvailable reports.
func duplicateUserError(err error) *ValidationError {
	constraint, ok := repository.UniqueViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "users_username_key":
		return fieldError("username", usernameTaken)
	case "users_email_key":
		return fieldError("email", emailTaken)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, userAgent, ip string) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		UserAgent: optional(userAgent),
		IPAddress: optional(ip),
		ExpiresAt: now.Add(s.session.Expiry()),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
