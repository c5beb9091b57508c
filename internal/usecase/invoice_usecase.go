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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceNoItems  = errors.New("invoice must contain at least one item")
)

type InvoiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetAll(ctx context.Context) ([]dto.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	UpdateDateTime(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceDateTimeRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
}

type invoiceUsecase struct {
	log         *logrus.Logger
	invoiceRepo repository.InvoiceRepository
	foodRepo    repository.FoodRepository
	audit       service.AuditService
}

func NewInvoiceUsecase(
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	foodRepo repository.FoodRepository,
	audit service.AuditService,
) InvoiceUsecase {
	return &invoiceUsecase{
		log:         log,
		invoiceRepo: invoiceRepo,
		foodRepo:    foodRepo,
		audit:       audit,
	}
}

// Create stores the amounts exactly as submitted. Every item must reference an existing food.
func (u *invoiceUsecase) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrInvoiceNoItems
	}

	items := make([]entity.InvoiceItem, len(req.Items))
	foodIDs := make(map[uuid.UUID]struct{}, len(req.Items))
	for i, item := range req.Items {
		foodID, err := uuid.Parse(item.Food)
		if err != nil {
			return nil, ErrFoodNotFound
		}
		foodIDs[foodID] = struct{}{}
		items[i] = entity.InvoiceItem{
			FoodID:   foodID,
			Quantity: *item.Quantity,
			Price:    *item.Price,
			Sum:      *item.Sum,
		}
	}

	ids := make([]uuid.UUID, 0, len(foodIDs))
	for id := range foodIDs {
		ids = append(ids, id)
	}
	count, err := u.foodRepo.CountByIDs(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to count invoice foods: %+v", err)
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, ErrFoodNotFound
	}

	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}

	invoice := &entity.Invoice{
		Items:    items,
		Date:     req.Date,
		Time:     req.Time,
		Subtotal: *req.Subtotal,
		Discount: discount,
		Total:    *req.Total,
	}

	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	response := converter.InvoiceToResponse(invoice)
	u.audit.LogCreate(ctx, "invoice", invoice.ID.String(), response)
	return response, nil
}

func (u *invoiceUsecase) GetAll(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := u.invoiceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all invoices: %+v", err)
		return nil, err
	}
	return converter.InvoicesToResponses(invoices), nil
}

func (u *invoiceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.InvoiceToResponse(invoice), nil
}

// UpdateDateTime changes only the date and/or time; items and amounts are immutable.
func (u *invoiceUsecase) UpdateDateTime(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceDateTimeRequest) (*dto.InvoiceResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	invoice, err := u.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	before := converter.InvoiceToResponse(invoice)

	if req.Date != nil {
		invoice.Date = *req.Date
	}
	if req.Time != nil {
		invoice.Time = *req.Time
	}

	if err := u.invoiceRepo.UpdateDateTime(ctx, invoice); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	updated, err := u.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	response := converter.InvoiceToResponse(updated)
	u.audit.LogUpdate(ctx, "invoice", invoice.ID.String(), before, response)
	return response, nil
}

func (u *invoiceUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.invoiceRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete invoice: %+v", err)
		return nil, fmt.Errorf("delete invoice: %w", err)
	}

	response := converter.InvoiceToResponse(invoice)
	u.audit.LogDelete(ctx, "invoice", invoice.ID.String(), response)
	return response, nil
}

func (u *invoiceUsecase) findInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}
