package usecase

import (
	"context"
	"errors"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUserRoleNotFound = errors.New("user role not found")
	ErrPermissionDenied = errors.New("access denied: insufficient permissions")
)

// AuthorizationUsecase decides whether a user may perform an action on a resource.
type AuthorizationUsecase interface {
	Authorize(ctx context.Context, userID uuid.UUID, resource entity.Resource, action entity.Action) error
}

type authorizationUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAuthorizationUsecase(log *logrus.Logger, userRepo repository.UserRepository, roleRepo repository.RoleRepository) AuthorizationUsecase {
	return &authorizationUsecase{
		log:      log,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// Authorize returns nil when granted, ErrUserRoleNotFound when the user or its role
// cannot be resolved, and ErrPermissionDenied when the role lacks the permission.
func (u *authorizationUsecase) Authorize(ctx context.Context, userID uuid.UUID, resource entity.Resource, action entity.Action) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserRoleNotFound
	}

	role, err := u.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return err
	}
	if role == nil {
		return ErrUserRoleNotFound
	}

	if !role.Grants(resource, action) {
		return ErrPermissionDenied
	}
	return nil
}
