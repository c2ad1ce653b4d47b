package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hotel-management/internal/dto/request"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// GenerateInvoice handles POST /api/invoices (protected)
func (h *InvoiceHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.GenerateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.GenerateInvoice(r.Context(), userID.String(), &req)
	if err != nil {
		respondError(w, h.log, err, "generate invoice")
		return
	}

	utils.ResponseCreated(w, "success", invoice)
}

// GetInvoice handles GET /api/invoices/{id} (protected)
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	invoice, err := h.service.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		respondError(w, h.log, err, "get invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// ListBookingInvoices handles GET /api/bookings/{id}/invoices (protected)
func (h *InvoiceHandler) ListBookingInvoices(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	invoices, err := h.service.ListBookingInvoices(r.Context(), bookingID)
	if err != nil {
		respondError(w, h.log, err, "list booking invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// DownloadInvoicePDF handles GET /api/invoices/{id}/pdf (protected)
func (h *InvoiceHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	pdfBytes, filename, err := h.service.RenderInvoicePDF(r.Context(), invoiceID)
	if err != nil {
		respondError(w, h.log, err, "render invoice PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
