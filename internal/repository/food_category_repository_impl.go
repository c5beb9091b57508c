package repository

import (
	"context"
	"errors"

	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type foodCategoryRepository struct {
	db *gorm.DB
}

func NewFoodCategoryRepository(db *gorm.DB) domainRepo.FoodCategoryRepository {
	return &foodCategoryRepository{db: db}
}

func (r *foodCategoryRepository) Create(ctx context.Context, category *entity.FoodCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *foodCategoryRepository) FindAll(ctx context.Context) ([]entity.FoodCategory, error) {
	var categories []entity.FoodCategory
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *foodCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodCategory, error) {
	var category entity.FoodCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *foodCategoryRepository) Update(ctx context.Context, category *entity.FoodCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *foodCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FoodCategory{}).Error
}
