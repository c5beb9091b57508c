package usecase

import (
	"context"
	"errors"
	"fmt"

	"foodstall-backend/internal/converter"
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/domain/repository"
	"foodstall-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type UserUsecase interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type userUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	sessionRepo repository.SessionRepository
	audit       service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	sessionRepo repository.SessionRepository,
	audit service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:         log,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		audit:       audit,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	roleIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		roleIDs = append(roleIDs, user.RoleID)
	}
	roles, err := u.roleRepo.FindByIDs(ctx, roleIDs)
	if err != nil {
		u.log.Warnf("Failed to find user roles: %+v", err)
		return nil, err
	}
	roleNames := make(map[uuid.UUID]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = role.Name
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *converter.UserToResponse(&users[i], roleNames[users[i].RoleID])
	}
	return responses, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, user)
}

// Update changes email, role and/or password. A new password revokes every session of the user.
func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	user, err := u.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	before, err := u.toResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}

	if req.RoleName != nil {
		role, err := u.roleRepo.FindByName(ctx, *req.RoleName)
		if err != nil {
			u.log.Warnf("Failed to find role by name: %+v", err)
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = role.ID
	}

	if req.NewPassword != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, fmt.Errorf("update user: %w", err)
	}

	if req.NewPassword != nil {
		if err := u.sessionRepo.DeleteByUser(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke user sessions: %+v", err)
			return nil, err
		}
	}

	response, err := u.toResponse(ctx, user)
	if err != nil {
		return nil, err
	}
	u.audit.LogUpdate(ctx, "user", user.ID.String(), before, response)
	return response, nil
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	response, err := u.toResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if err := u.sessionRepo.DeleteByUser(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke user sessions: %+v", err)
		return nil, err
	}

	u.audit.LogDelete(ctx, "user", user.ID.String(), response)
	return response, nil
}

func (u *userUsecase) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) toResponse(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	return userResponse(ctx, u.log, u.roleRepo, user)
}

// userResponse resolves the role name of user; a missing role yields an empty name.
func userResponse(ctx context.Context, log *logrus.Logger, roleRepo repository.RoleRepository, user *entity.User) (*dto.UserResponse, error) {
	role, err := roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		log.Warnf("Failed to find user role: %+v", err)
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}
	return converter.UserToResponse(user, roleName), nil
}
