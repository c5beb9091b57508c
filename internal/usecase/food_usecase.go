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
	ErrFoodNotFound = errors.New("food not found")
)

type FoodUsecase interface {
	Create(ctx context.Context, req *dto.CreateFoodRequest) (*dto.FoodResponse, error)
	GetAll(ctx context.Context) ([]dto.FoodResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFoodRequest) (*dto.FoodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error)
}

type foodUsecase struct {
	log          *logrus.Logger
	foodRepo     repository.FoodRepository
	categoryRepo repository.FoodCategoryRepository
	audit        service.AuditService
}

func NewFoodUsecase(
	log *logrus.Logger,
	foodRepo repository.FoodRepository,
	categoryRepo repository.FoodCategoryRepository,
	audit service.AuditService,
) FoodUsecase {
	return &foodUsecase{
		log:          log,
		foodRepo:     foodRepo,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

func (u *foodUsecase) Create(ctx context.Context, req *dto.CreateFoodRequest) (*dto.FoodResponse, error) {
	categoryID, err := u.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	food := &entity.Food{
		Name:       req.Name,
		Price:      *req.Price,
		Img:        req.Img,
		IsHidden:   *req.IsHidden,
		CategoryID: categoryID,
	}

	if err := u.foodRepo.Create(ctx, food); err != nil {
		u.log.Warnf("Failed to create food: %+v", err)
		return nil, fmt.Errorf("create food: %w", err)
	}

	response := converter.FoodToResponse(food)
	u.audit.LogCreate(ctx, "food", food.ID.String(), response)
	return response, nil
}

func (u *foodUsecase) GetAll(ctx context.Context) ([]dto.FoodResponse, error) {
	foods, err := u.foodRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all foods: %+v", err)
		return nil, err
	}
	return converter.FoodsToResponses(foods), nil
}

func (u *foodUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error) {
	food, err := u.findFood(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.FoodToResponse(food), nil
}

// Update replaces every field of the food; the category must still exist.
func (u *foodUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFoodRequest) (*dto.FoodResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	food, err := u.findFood(ctx, id)
	if err != nil {
		return nil, err
	}
	before := converter.FoodToResponse(food)

	categoryID, err := u.resolveCategory(ctx, *req.Category)
	if err != nil {
		return nil, err
	}

	food.Name = *req.Name
	food.Price = *req.Price
	food.Img = *req.Img
	food.IsHidden = *req.IsHidden
	food.CategoryID = categoryID

	if err := u.foodRepo.Update(ctx, food); err != nil {
		u.log.Warnf("Failed to update food: %+v", err)
		return nil, fmt.Errorf("update food: %w", err)
	}

	response := converter.FoodToResponse(food)
	u.audit.LogUpdate(ctx, "food", food.ID.String(), before, response)
	return response, nil
}

func (u *foodUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error) {
	food, err := u.findFood(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.foodRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete food: %+v", err)
		return nil, fmt.Errorf("delete food: %w", err)
	}

	response := converter.FoodToResponse(food)
	u.audit.LogDelete(ctx, "food", food.ID.String(), response)
	return response, nil
}

func (u *foodUsecase) findFood(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	food, err := u.foodRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find food: %+v", err)
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	return food, nil
}

// resolveCategory treats a malformed identifier the same as an unknown one.
func (u *foodUsecase) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrCategoryNotFound
	}

	category, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return uuid.Nil, err
	}
	if category == nil {
		return uuid.Nil, ErrCategoryNotFound
	}
	return categoryID, nil
}
