package repository

import (
	"context"
	"errors"

	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) domainRepo.FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) FindAll(ctx context.Context) ([]entity.Food, error) {
	var foods []entity.Food
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var food entity.Food
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&entity.Food{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Food{}).Error
}
