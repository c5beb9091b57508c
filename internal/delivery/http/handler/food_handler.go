package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const (
	msgFoodNotFound     = "Food item not found"
	msgCategoryNotFound = "Category not found. Please provide a valid category ID."
)

type FoodHandler struct {
	foodUsecase usecase.FoodUsecase
	validator   *validator.CustomValidator
}

func NewFoodHandler(foodUsecase usecase.FoodUsecase, validator *validator.CustomValidator) *FoodHandler {
	return &FoodHandler{
		foodUsecase: foodUsecase,
		validator:   validator,
	}
}

// GetAll handles listing foods
// @Summary Get all foods
// @Tags Foods
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /foods/getAllFoods [get]
func (h *FoodHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve foods", err)
		return
	}

	response.Success(w, http.StatusOK, "Foods retrieved successfully", "foods", foods)
}

// GetByID handles getting a food by id
// @Summary Get food by ID
// @Tags Foods
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /foods/getFoodById/{id} [get]
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgFoodNotFound)
	if !ok {
		return
	}

	food, err := h.foodUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to retrieve food")
		return
	}

	response.Success(w, http.StatusOK, "Food retrieved successfully", "food", food)
}

// Create handles food creation
// @Summary Create a food
// @Tags Foods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFoodRequest true "Create Food Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /foods/createFood [post]
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFoodRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	food, err := h.foodUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create food")
		return
	}

	response.Success(w, http.StatusCreated, "Food created successfully", "food", food)
}

// Update handles full replacement of a food
// @Summary Update a food
// @Tags Foods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param request body dto.UpdateFoodRequest true "Update Food Request"
// @Success 200 {object} response.Envelope
// @Router /foods/updateFood/{id} [put]
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgFoodNotFound)
	if !ok {
		return
	}

	var req dto.UpdateFoodRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	food, err := h.foodUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Error updating food")
		return
	}

	response.Success(w, http.StatusOK, "Food updated successfully", "food", food)
}

// Delete handles food deletion
// @Summary Delete a food
// @Tags Foods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} response.Envelope
// @Router /foods/deleteFood/{id} [delete]
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgFoodNotFound)
	if !ok {
		return
	}

	food, err := h.foodUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error deleting food")
		return
	}

	response.Success(w, http.StatusOK, "Food deleted successfully", "food", food)
}

func (h *FoodHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrFoodNotFound):
		response.NotFound(w, msgFoodNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		response.NotFound(w, msgCategoryNotFound)
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
