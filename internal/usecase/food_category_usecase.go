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
	ErrCategoryNotFound = errors.New("category not found")
)

type FoodCategoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetAll(ctx context.Context) ([]dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
}

type foodCategoryUsecase struct {
	log          *logrus.Logger
	categoryRepo repository.FoodCategoryRepository
	audit        service.AuditService
}

func NewFoodCategoryUsecase(log *logrus.Logger, categoryRepo repository.FoodCategoryRepository, audit service.AuditService) FoodCategoryUsecase {
	return &foodCategoryUsecase{
		log:          log,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

func (u *foodCategoryUsecase) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.FoodCategory{
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
		IsHidden:            *req.IsHidden,
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, fmt.Errorf("create category: %w", err)
	}

	response := converter.CategoryToResponse(category)
	u.audit.LogCreate(ctx, "foodCategory", category.ID.String(), response)
	return response, nil
}

func (u *foodCategoryUsecase) GetAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all categories: %+v", err)
		return nil, err
	}
	return converter.CategoriesToResponses(categories), nil
}

func (u *foodCategoryUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := u.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.CategoryToResponse(category), nil
}

func (u *foodCategoryUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	category, err := u.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	before := converter.CategoryToResponse(category)

	if req.CategoryName != nil {
		category.CategoryName = *req.CategoryName
	}
	if req.CategoryDescription != nil {
		category.CategoryDescription = *req.CategoryDescription
	}
	if req.IsHidden != nil {
		category.IsHidden = *req.IsHidden
	}

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		u.log.Warnf("Failed to update category: %+v", err)
		return nil, fmt.Errorf("update category: %w", err)
	}

	response := converter.CategoryToResponse(category)
	u.audit.LogUpdate(ctx, "foodCategory", category.ID.String(), before, response)
	return response, nil
}

// Delete does not touch foods that still reference the category.
func (u *foodCategoryUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := u.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete category: %+v", err)
		return nil, fmt.Errorf("delete category: %w", err)
	}

	response := converter.CategoryToResponse(category)
	u.audit.LogDelete(ctx, "foodCategory", category.ID.String(), response)
	return response, nil
}

func (u *foodCategoryUsecase) findCategory(ctx context.Context, id uuid.UUID) (*entity.FoodCategory, error) {
	category, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
