package wire

import (
	"hotel-management/internal/adaptor"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/middleware"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInvoice(
	r chi.Router,
	invoiceHandler *adaptor.InvoiceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/invoices - Generate an invoice snapshot for a booking
		r.Post("/api/invoices", invoiceHandler.GenerateInvoice)

		// GET /api/invoices/{id} - Invoice details
		r.Get("/api/invoices/{id}", invoiceHandler.GetInvoice)

		// GET /api/invoices/{id}/pdf - Download the invoice as PDF
		r.Get("/api/invoices/{id}/pdf", invoiceHandler.DownloadInvoicePDF)
	})
}
