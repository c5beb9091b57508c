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
	ErrMenuNotFound = errors.New("menu not found")
)

type FoodMenuUsecase interface {
	Create(ctx context.Context, req *dto.CreateMenuRequest) (*dto.MenuResponse, error)
	GetAll(ctx context.Context) ([]dto.MenuResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMenuRequest) (*dto.MenuResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error)
}

type foodMenuUsecase struct {
	log      *logrus.Logger
	menuRepo repository.FoodMenuRepository
	audit    service.AuditService
}

func NewFoodMenuUsecase(log *logrus.Logger, menuRepo repository.FoodMenuRepository, audit service.AuditService) FoodMenuUsecase {
	return &foodMenuUsecase{
		log:      log,
		menuRepo: menuRepo,
		audit:    audit,
	}
}

func (u *foodMenuUsecase) Create(ctx context.Context, req *dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	menu := &entity.FoodMenu{
		MenuName:    req.MenuName,
		URL:         req.URL,
		IsHidden:    *req.IsHidden,
		CreatedDate: req.CreatedDate,
		RouteName:   req.RouteName,
	}

	if err := u.menuRepo.Create(ctx, menu); err != nil {
		u.log.Warnf("Failed to create menu: %+v", err)
		return nil, fmt.Errorf("create menu: %w", err)
	}

	response := converter.MenuToResponse(menu)
	u.audit.LogCreate(ctx, "foodMenu", menu.ID.String(), response)
	return response, nil
}

func (u *foodMenuUsecase) GetAll(ctx context.Context) ([]dto.MenuResponse, error) {
	menus, err := u.menuRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all menus: %+v", err)
		return nil, err
	}
	return converter.MenusToResponses(menus), nil
}

func (u *foodMenuUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error) {
	menu, err := u.findMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.MenuToResponse(menu), nil
}

// Update replaces the whole menu document.
func (u *foodMenuUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	menu, err := u.findMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	before := converter.MenuToResponse(menu)

	menu.MenuName = *req.MenuName
	menu.URL = *req.URL
	menu.IsHidden = *req.IsHidden
	menu.CreatedDate = *req.CreatedDate
	menu.RouteName = *req.RouteName

	if err := u.menuRepo.Update(ctx, menu); err != nil {
		u.log.Warnf("Failed to update menu: %+v", err)
		return nil, fmt.Errorf("update menu: %w", err)
	}

	response := converter.MenuToResponse(menu)
	u.audit.LogUpdate(ctx, "foodMenu", menu.ID.String(), before, response)
	return response, nil
}

func (u *foodMenuUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error) {
	menu, err := u.findMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.menuRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete menu: %+v", err)
		return nil, fmt.Errorf("delete menu: %w", err)
	}

	response := converter.MenuToResponse(menu)
	u.audit.LogDelete(ctx, "foodMenu", menu.ID.String(), response)
	return response, nil
}

func (u *foodMenuUsecase) findMenu(ctx context.Context, id uuid.UUID) (*entity.FoodMenu, error) {
	menu, err := u.menuRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find menu: %+v", err)
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}
