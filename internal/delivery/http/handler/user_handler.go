package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgUserNotFound = "User not found."

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error retrieving user details", err)
		return
	}

	response.Success(w, http.StatusOK, "User details retrieved successfully.", "users", users)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgUserNotFound)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error retrieving user details")
		return
	}

	response.Success(w, http.StatusOK, "User details retrieved successfully.", "user", user)
}

// Update handles changing a user's email, role or password
// @Summary Update a user
// @Description Changing the password signs the user out everywhere
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /user/updateUser/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgUserNotFound)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully.", "user", user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgUserNotFound)
	if !ok {
		return
	}

	user, err := h.userUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully.", "user", user)
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, msgUserNotFound)
	case errors.Is(err, usecase.ErrRoleNotFound):
		response.BadRequest(w, "Role not found. Please provide a valid role name.")
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		response.Conflict(w, "Email already in use.")
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
