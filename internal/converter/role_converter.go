package converter

import (
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
)

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}

	permissions := role.Permissions
	if permissions == nil {
		permissions = entity.PermissionSet{}
	}

	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: permissions,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *RoleToResponse(&roles[i])
	}
	return responses
}

func RoleToSummary(role *entity.Role) *dto.RoleSummaryResponse {
	if role == nil {
		return nil
	}
	return &dto.RoleSummaryResponse{ID: role.ID, Name: role.Name}
}
