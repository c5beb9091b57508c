package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgCategoryMissing = "Category not found"

type FoodCategoryHandler struct {
	categoryUsecase usecase.FoodCategoryUsecase
	validator       *validator.CustomValidator
}

func NewFoodCategoryHandler(categoryUsecase usecase.FoodCategoryUsecase, validator *validator.CustomValidator) *FoodCategoryHandler {
	return &FoodCategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

func (h *FoodCategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve categories", err)
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", "categories", categories)
}

func (h *FoodCategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgCategoryMissing)
	if !ok {
		return
	}

	category, err := h.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to retrieve category")
		return
	}

	response.Success(w, http.StatusOK, "Category retrieved successfully", "category", category)
}

// Create handles category creation
// @Summary Create a food category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Envelope
// @Router /categories/createCategory [post]
func (h *FoodCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	category, err := h.categoryUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create category")
		return
	}

	response.Success(w, http.StatusCreated, "Category created successfully", "category", category)
}

func (h *FoodCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgCategoryMissing)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	category, err := h.categoryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Error updating category")
		return
	}

	response.Success(w, http.StatusOK, "Category updated successfully", "category", category)
}

func (h *FoodCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgCategoryMissing)
	if !ok {
		return
	}

	category, err := h.categoryUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error deleting category")
		return
	}

	response.Success(w, http.StatusOK, "Category deleted successfully", "category", category)
}

func (h *FoodCategoryHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		response.NotFound(w, msgCategoryMissing)
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
