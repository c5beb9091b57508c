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
)

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameExists     = errors.New("role name already exists")
	ErrInvalidPermissions = errors.New("invalid permissions")
)

type RoleUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetAll(ctx context.Context) ([]dto.RoleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
}

type roleUsecase struct {
	log      *logrus.Logger
	roleRepo repository.RoleRepository
	audit    service.AuditService
}

func NewRoleUsecase(log *logrus.Logger, roleRepo repository.RoleRepository, audit service.AuditService) RoleUsecase {
	return &roleUsecase{
		log:      log,
		roleRepo: roleRepo,
		audit:    audit,
	}
}

func (u *roleUsecase) Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := req.Permissions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPermissions, err)
	}

	existing, err := u.roleRepo.FindByName(ctx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleNameExists
	}

	role := &entity.Role{
		Name:        req.Name,
		Permissions: req.Permissions,
	}

	if err := u.roleRepo.Create(ctx, role); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrRoleNameExists
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, fmt.Errorf("create role: %w", err)
	}

	response := converter.RoleToResponse(role)
	u.audit.LogCreate(ctx, "role", role.ID.String(), response)
	return response, nil
}

func (u *roleUsecase) GetAll(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}
	return converter.RolesToResponses(roles), nil
}

func (u *roleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := u.findRole(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.RoleToResponse(role), nil
}

// Update renames the role and/or replaces its whole permission set.
func (u *roleUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	role, err := u.findRole(ctx, id)
	if err != nil {
		return nil, err
	}
	before := converter.RoleToResponse(role)

	if req.Permissions != nil {
		if err := req.Permissions.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPermissions, err)
		}
		role.Permissions = *req.Permissions
	}

	if req.Name != nil && *req.Name != role.Name {
		existing, err := u.roleRepo.FindByName(ctx, *req.Name)
		if err != nil {
			u.log.Warnf("Failed to find role by name: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrRoleNameExists
		}
		role.Name = *req.Name
	}

	if err := u.roleRepo.Update(ctx, role); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrRoleNameExists
		}
		u.log.Warnf("Failed to update role: %+v", err)
		return nil, fmt.Errorf("update role: %w", err)
	}

	response := converter.RoleToResponse(role)
	u.audit.LogUpdate(ctx, "role", role.ID.String(), before, response)
	return response, nil
}

// Delete leaves users and employees that reference the role untouched;
// such users are refused by the permission gate afterwards.
func (u *roleUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := u.findRole(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.roleRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete role: %+v", err)
		return nil, fmt.Errorf("delete role: %w", err)
	}

	response := converter.RoleToResponse(role)
	u.audit.LogDelete(ctx, "role", role.ID.String(), response)
	return response, nil
}

func (u *roleUsecase) findRole(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}
