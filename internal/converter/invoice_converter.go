package converter

import (
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity with its items to InvoiceResponse DTO
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	items := make([]dto.InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = dto.InvoiceItemResponse{
			ID:       item.ID,
			Food:     item.FoodID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Sum:      item.Sum,
		}
	}

	return &dto.InvoiceResponse{
		ID:        invoice.ID,
		Items:     items,
		Date:      invoice.Date,
		Time:      invoice.Time,
		Subtotal:  invoice.Subtotal,
		Discount:  invoice.Discount,
		Total:     invoice.Total,
		CreatedAt: invoice.CreatedAt,
		UpdatedAt: invoice.UpdatedAt,
	}
}

func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *InvoiceToResponse(&invoices[i])
	}
	return responses
}
