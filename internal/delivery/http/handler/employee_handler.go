package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgEmployeeNotFound = "Employee not found"

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve employees", err)
		return
	}

	response.Success(w, http.StatusOK, "Employees retrieved successfully", "employees", employees)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgEmployeeNotFound)
	if !ok {
		return
	}

	employee, err := h.employeeUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error retrieving employee details")
		return
	}

	response.Success(w, http.StatusOK, "Employee retrieved successfully", "employee", employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	employee, err := h.employeeUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create employee")
		return
	}

	response.Success(w, http.StatusCreated, "Employee created successfully", "employee", employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgEmployeeNotFound)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	employee, err := h.employeeUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee updated successfully", "employee", employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgEmployeeNotFound)
	if !ok {
		return
	}

	employee, err := h.employeeUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to delete employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee deleted successfully", "employee", employee)
}

func (h *EmployeeHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		response.NotFound(w, msgEmployeeNotFound)
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
