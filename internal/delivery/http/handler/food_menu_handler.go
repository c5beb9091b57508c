package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgMenuNotFound = "Menu not found"

type FoodMenuHandler struct {
	menuUsecase usecase.FoodMenuUsecase
	validator   *validator.CustomValidator
}

func NewFoodMenuHandler(menuUsecase usecase.FoodMenuUsecase, validator *validator.CustomValidator) *FoodMenuHandler {
	return &FoodMenuHandler{
		menuUsecase: menuUsecase,
		validator:   validator,
	}
}

func (h *FoodMenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menuUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve menus", err)
		return
	}

	response.Success(w, http.StatusOK, "Menus retrieved successfully", "menus", menus)
}

func (h *FoodMenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgMenuNotFound)
	if !ok {
		return
	}

	menu, err := h.menuUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to retrieve menu")
		return
	}

	response.Success(w, http.StatusOK, "Menu retrieved successfully", "menu", menu)
}

func (h *FoodMenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMenuRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	menu, err := h.menuUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create menu")
		return
	}

	response.Success(w, http.StatusCreated, "Menu created successfully", "menu", menu)
}

// Update replaces every field of the menu, so all create fields are required.
func (h *FoodMenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgMenuNotFound)
	if !ok {
		return
	}

	var req dto.UpdateMenuRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	menu, err := h.menuUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Error updating menu")
		return
	}

	response.Success(w, http.StatusOK, "Menu updated successfully", "menu", menu)
}

func (h *FoodMenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgMenuNotFound)
	if !ok {
		return
	}

	menu, err := h.menuUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error deleting menu")
		return
	}

	response.Success(w, http.StatusOK, "Menu deleted successfully", "menu", menu)
}

func (h *FoodMenuHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrMenuNotFound):
		response.NotFound(w, msgMenuNotFound)
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
