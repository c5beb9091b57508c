package usecase

import (
	"context"
	"testing"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFoodRequest(category string) *dto.CreateFoodRequest {
	return &dto.CreateFoodRequest{
		Name:     "Pho",
		Price:    ptr(decimal.NewFromInt(50000)),
		Img:      "x",
		IsHidden: ptr(false),
		Category: category,
	}
}

func TestFoodCreatePersistsExactlyOne(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t)
	uc := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)

	food, err := uc.Create(context.Background(), validFoodRequest(category.ID.String()))
	require.NoError(t, err)
	assert.Equal(t, "Pho", food.Name)
	assert.True(t, decimal.NewFromInt(50000).Equal(food.Price))
	assert.False(t, food.IsHidden)
	assert.Equal(t, category.ID, food.Category)
	assert.EqualValues(t, 1, env.countRows(t, &entity.Food{}))

	got, err := uc.GetByID(context.Background(), food.ID)
	require.NoError(t, err)
	assert.Equal(t, food.Name, got.Name)
	assert.Equal(t, food.Img, got.Img)
	assert.True(t, food.Price.Equal(got.Price))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestFoodCreateUnknownCategoryNeverPersists(t *testing.T) {
	env := newTestEnv(t)
	uc := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)

	for _, category := range []string{uuid.NewString(), "not-an-id"} {
		_, err := uc.Create(context.Background(), validFoodRequest(category))
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	}
	assert.EqualValues(t, 0, env.countRows(t, &entity.Food{}))
}

func TestFoodEmptyUpdateTouchesNothing(t *testing.T) {
	env := newTestEnv(t)
	foods := &countingFoodRepo{FoodRepository: env.foods}
	uc := NewFoodUsecase(env.log, foods, env.categories, env.audit)

	_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateFoodRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Zero(t, foods.calls)
}

func TestFoodUpdateReplacesAndRechecksCategory(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t)
	uc := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)
	ctx := context.Background()

	food, err := uc.Create(ctx, validFoodRequest(category.ID.String()))
	require.NoError(t, err)

	update := &dto.UpdateFoodRequest{
		Name:     ptr("Bun Cha"),
		Price:    ptr(decimal.NewFromInt(60000)),
		Img:      ptr("y"),
		IsHidden: ptr(true),
		Category: ptr(uuid.NewString()),
	}
	_, err = uc.Update(ctx, food.ID, update)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	update.Category = ptr(category.ID.String())
	updated, err := uc.Update(ctx, food.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Bun Cha", updated.Name)
	assert.True(t, updated.IsHidden)

	_, err = uc.Update(ctx, uuid.New(), update)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodDeleteReturnsDocumentThenNotFound(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t)
	uc := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)
	ctx := context.Background()

	food, err := uc.Create(ctx, validFoodRequest(category.ID.String()))
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, food.ID, deleted.ID)

	_, err = uc.Delete(ctx, food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
	_, err = uc.GetByID(ctx, food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodMutationsAreAudited(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t)
	uc := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)

	actor := uuid.New()
	ctx := entity.ContextWithIdentity(context.Background(), entity.Identity{UserID: actor})
	food, err := uc.Create(ctx, validFoodRequest(category.ID.String()))
	require.NoError(t, err)
	_, err = uc.Delete(ctx, food.ID)
	require.NoError(t, err)

	logs, err := env.auditLogs.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "food.create", logs[0].Action)
	assert.Equal(t, "food.delete", logs[1].Action)
	assert.Equal(t, actor, *logs[0].UserID)
}

func TestFoodCategoryDeleteLeavesDanglingFood(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t)
	foods := NewFoodUsecase(env.log, env.foods, env.categories, env.audit)
	categories := NewFoodCategoryUsecase(env.log, env.categories, env.audit)
	ctx := context.Background()

	food, err := foods.Create(ctx, validFoodRequest(category.ID.String()))
	require.NoError(t, err)

	_, err = categories.Delete(ctx, category.ID)
	require.NoError(t, err)

	got, err := foods.GetByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, got.Category)
}
