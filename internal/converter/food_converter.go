package converter

import (
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
)

// FoodToResponse converts a Food entity to FoodResponse DTO
func FoodToResponse(food *entity.Food) *dto.FoodResponse {
	if food == nil {
		return nil
	}

	return &dto.FoodResponse{
		ID:        food.ID,
		Name:      food.Name,
		Price:     food.Price,
		Img:       food.Img,
		IsHidden:  food.IsHidden,
		Category:  food.CategoryID,
		CreatedAt: food.CreatedAt,
		UpdatedAt: food.UpdatedAt,
	}
}

// FoodsToResponses converts a slice of Food entities to FoodResponse DTOs
func FoodsToResponses(foods []entity.Food) []dto.FoodResponse {
	responses := make([]dto.FoodResponse, len(foods))
	for i := range foods {
		responses[i] = *FoodToResponse(&foods[i])
	}
	return responses
}

// CategoryToResponse converts a FoodCategory entity to CategoryResponse DTO
func CategoryToResponse(category *entity.FoodCategory) *dto.CategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.CategoryResponse{
		ID:                  category.ID,
		CategoryName:        category.CategoryName,
		CategoryDescription: category.CategoryDescription,
		IsHidden:            category.IsHidden,
		CreatedAt:           category.CreatedAt,
		UpdatedAt:           category.UpdatedAt,
	}
}

func CategoriesToResponses(categories []entity.FoodCategory) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}

// MenuToResponse converts a FoodMenu entity to MenuResponse DTO
func MenuToResponse(menu *entity.FoodMenu) *dto.MenuResponse {
	if menu == nil {
		return nil
	}

	return &dto.MenuResponse{
		ID:          menu.ID,
		MenuName:    menu.MenuName,
		URL:         menu.URL,
		IsHidden:    menu.IsHidden,
		CreatedDate: menu.CreatedDate,
		RouteName:   menu.RouteName,
		CreatedAt:   menu.CreatedAt,
		UpdatedAt:   menu.UpdatedAt,
	}
}

func MenusToResponses(menus []entity.FoodMenu) []dto.MenuResponse {
	responses := make([]dto.MenuResponse, len(menus))
	for i := range menus {
		responses[i] = *MenuToResponse(&menus[i])
	}
	return responses
}
