package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgRoleNotFound = "Role not found"

type RoleHandler struct {
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

func (h *RoleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve roles", err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", "roles", roles)
}

func (h *RoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgRoleNotFound)
	if !ok {
		return
	}

	role, err := h.roleUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to retrieve role")
		return
	}

	response.Success(w, http.StatusOK, "Role retrieved successfully", "role", role)
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoleRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	role, err := h.roleUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create role")
		return
	}

	response.Success(w, http.StatusCreated, "Role created successfully", "role", role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgRoleNotFound)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	role, err := h.roleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update role")
		return
	}

	response.Success(w, http.StatusOK, "Role updated successfully", "role", role)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgRoleNotFound)
	if !ok {
		return
	}

	role, err := h.roleUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to delete role")
		return
	}

	response.Success(w, http.StatusOK, "Role deleted successfully", "role", role)
}

func (h *RoleHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		response.NotFound(w, msgRoleNotFound)
	case errors.Is(err, usecase.ErrRoleNameExists):
		response.Conflict(w, "Role name already in use.")
	case errors.Is(err, usecase.ErrInvalidPermissions):
		response.Error(w, http.StatusBadRequest, "Invalid permissions", err.Error())
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
