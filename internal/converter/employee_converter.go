package converter

import (
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
)

// EmployeeToResponse converts an Employee entity to EmployeeResponse DTO.
// role may be nil when the referenced role no longer exists.
func EmployeeToResponse(employee *entity.Employee, role *entity.Role) *dto.EmployeeResponse {
	if employee == nil {
		return nil
	}

	response := &dto.EmployeeResponse{
		ID:          employee.ID,
		Name:        employee.Name,
		Address:     employee.Address,
		PhoneNumber: employee.PhoneNumber,
		RoleID:      employee.RoleID,
		DateOfBirth: employee.DateOfBirth,
		CreatedAt:   employee.CreatedAt,
		UpdatedAt:   employee.UpdatedAt,
	}

	if role != nil {
		response.Role = RoleToSummary(role)
	}

	return response
}
