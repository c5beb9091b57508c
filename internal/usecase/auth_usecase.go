package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodstall-backend/internal/converter"
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/domain/repository"
	"foodstall-backend/internal/service"
	"foodstall-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	RegisterDev(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, identity *entity.Identity) error
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
	audit       service.AuditService
	defaultRole string
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	audit service.AuditService,
	defaultRole string,
) AuthUsecase {
	if defaultRole == "" {
		defaultRole = entity.RoleStaff
	}
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		audit:       audit,
		defaultRole: defaultRole,
	}
}

// Register creates a user with the requested role, or the configured default role.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.register(ctx, req, u.defaultRole)
}

// RegisterDev is the bootstrap registration; it defaults to the admin role.
func (u *authUsecase) RegisterDev(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.register(ctx, req, entity.RoleAdmin)
}

func (u *authUsecase) register(ctx context.Context, req *dto.RegisterRequest, fallbackRole string) (*dto.UserResponse, error) {
	roleName := req.RoleName
	if roleName == "" {
		roleName = fallbackRole
	}

	role, err := u.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		RoleID:   role.ID,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	u.audit.LogAuth(ctx, entity.AuditActionUserRegister, user.ID, entity.JSON{"role": role.Name})
	return converter.UserToResponse(user, role.Name), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(u.jwtService.GetExpiry()),
	}

	if err := u.sessionRepo.Create(ctx, session, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	token, err := u.jwtService.GenerateSessionToken(user.ID, user.Email, session.ID)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	current, err := userResponse(ctx, u.log, u.roleRepo, user)
	if err != nil {
		return nil, err
	}

	u.audit.LogAuth(ctx, entity.AuditActionUserLogin, user.ID, entity.JSON{"session_id": session.ID})

	return &dto.LoginResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      current.Role,
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

// Logout destroys the caller's session. A request without a session is a no-op.
func (u *authUsecase) Logout(ctx context.Context, identity *entity.Identity) error {
	if identity == nil {
		return nil
	}

	if err := u.sessionRepo.Delete(ctx, identity.SessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	u.audit.LogAuth(ctx, entity.AuditActionUserLogout, identity.UserID, entity.JSON{"session_id": identity.SessionID})
	return nil
}

// Authenticate resolves a session token to the identity it was issued for.
// The token must verify and its session must still be live in the store.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	session, err := u.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil || session.UserID != claims.UserID {
		return nil, ErrInvalidSession
	}

	return &entity.Identity{
		UserID:    session.UserID,
		Email:     session.Email,
		SessionID: session.ID,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return userResponse(ctx, u.log, u.roleRepo, user)
}
