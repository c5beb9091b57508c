package repository

import (
	"context"
	"errors"

	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the invoice together with its items.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	for i := range invoice.Items {
		invoice.Items[i].Position = i
	}
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) FindAll(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).Order("created_at ASC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

// UpdateDateTime writes only the date and time columns; items and amounts are never touched.
func (r *invoiceRepository) UpdateDateTime(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).
		Model(&entity.Invoice{ID: invoice.ID}).
		Updates(map[string]interface{}{
			"date": invoice.Date,
			"time": invoice.Time,
		}).Error
}

// Delete removes the invoice and its items.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Invoice{}).Error
	})
}
