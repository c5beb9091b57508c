package handler

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

const msgInvoiceNotFound = "Invoice not found"

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

// GetAll handles listing invoices
// @Summary Get all invoices
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /invoices/getAllInvoices [get]
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error retrieving invoices", err)
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", "invoices", invoices)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgInvoiceNotFound)
	if !ok {
		return
	}

	invoice, err := h.invoiceUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error retrieving invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", "invoice", invoice)
}

// Create handles invoice creation
// @Summary Create an invoice
// @Description Amounts are stored as submitted and never recomputed
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Create Invoice Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /invoices/createInvoice [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	invoice, err := h.invoiceUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Error creating invoice")
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", "invoice", invoice)
}

// UpdateDateTime handles changing the date and time of an invoice
// @Summary Update invoice date and time
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceDateTimeRequest true "Date/Time"
// @Success 200 {object} response.Envelope
// @Router /invoices/updateInvoiceDateTime/{id} [put]
func (h *InvoiceHandler) UpdateDateTime(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgInvoiceNotFound)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceDateTimeRequest
	if !bindUpdate(w, r, h.validator, &req) {
		return
	}

	invoice, err := h.invoiceUsecase.UpdateDateTime(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Error updating invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice updated successfully", "invoice", invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgInvoiceNotFound)
	if !ok {
		return
	}

	invoice, err := h.invoiceUsecase.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Error deleting invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice deleted successfully", "invoice", invoice)
}

func (h *InvoiceHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		response.NotFound(w, msgInvoiceNotFound)
	case errors.Is(err, usecase.ErrFoodNotFound):
		response.NotFound(w, msgFoodNotFound)
	case errors.Is(err, usecase.ErrInvoiceNoItems):
		response.BadRequest(w, "Invoice must contain at least one item.")
	case writeCommonError(w, err):
	default:
		response.InternalServerError(w, fallback, err)
	}
}
