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
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeUsecase interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetAll(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
}

type employeeUsecase struct {
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.RoleRepository
	audit        service.AuditService
}

func NewEmployeeUsecase(
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
	audit service.AuditService,
) EmployeeUsecase {
	return &employeeUsecase{
		log:          log,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		audit:        audit,
	}
}

// Create stores the role reference as given; it is not required to resolve.
func (u *employeeUsecase) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}

	employee := &entity.Employee{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		RoleID:      roleID,
		DateOfBirth: req.DateOfBirth,
	}

	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, fmt.Errorf("create employee: %w", err)
	}

	response, err := u.toResponse(ctx, employee)
	if err != nil {
		return nil, err
	}
	u.audit.LogCreate(ctx, "employee", employee.ID.String(), response)
	return response, nil
}

func (u *employeeUsecase) GetAll(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := u.employeeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all employees: %+v", err)
		return nil, err
	}

	roleIDs := make([]uuid.UUID, 0, len(employees))
	for _, employee := range employees {
		roleIDs = append(roleIDs, employee.RoleID)
	}
	roles, err := u.roleRepo.FindByIDs(ctx, roleIDs)
	if err != nil {
		u.log.Warnf("Failed to find employee roles: %+v", err)
		return nil, err
	}
	rolesByID := make(map[uuid.UUID]*entity.Role, len(roles))
	for i := range roles {
		rolesByID[roles[i].ID] = &roles[i]
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *converter.EmployeeToResponse(&employees[i], rolesByID[employees[i].RoleID])
	}
	return responses, nil
}

func (u *employeeUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := u.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, employee)
}

func (u *employeeUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	employee, err := u.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	before, err := u.toResponse(ctx, employee)
	if err != nil {
		return nil, err
	}

	if req.RoleID != nil {
		roleID, err := uuid.Parse(*req.RoleID)
		if err != nil {
			return nil, ErrInvalidIdentifier
		}
		employee.RoleID = roleID
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		employee.DateOfBirth = *req.DateOfBirth
	}

	if err := u.employeeRepo.Update(ctx, employee); err != nil {
		u.log.Warnf("Failed to update employee: %+v", err)
		return nil, fmt.Errorf("update employee: %w", err)
	}

	response, err := u.toResponse(ctx, employee)
	if err != nil {
		return nil, err
	}
	u.audit.LogUpdate(ctx, "employee", employee.ID.String(), before, response)
	return response, nil
}

func (u *employeeUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := u.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	response, err := u.toResponse(ctx, employee)
	if err != nil {
		return nil, err
	}

	if err := u.employeeRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete employee: %+v", err)
		return nil, fmt.Errorf("delete employee: %w", err)
	}

	u.audit.LogDelete(ctx, "employee", employee.ID.String(), response)
	return response, nil
}

func (u *employeeUsecase) findEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := u.employeeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (u *employeeUsecase) toResponse(ctx context.Context, employee *entity.Employee) (*dto.EmployeeResponse, error) {
	role, err := u.roleRepo.FindByID(ctx, employee.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find employee role: %+v", err)
		return nil, err
	}
	return converter.EmployeeToResponse(employee, role), nil
}
