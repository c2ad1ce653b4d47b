package wire

import (
	"hotel-management/internal/adaptor"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/middleware"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	paymentHandler *adaptor.PaymentHandler,
	invoiceHandler *adaptor.InvoiceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Create new booking for a walk-in or reserved guest
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - List bookings (paginated)
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// GET /api/bookings/{id} - Booking details with payments and active invoice
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// GET /api/bookings/{id}/payments - Payment history for a booking
		r.Get("/api/bookings/{id}/payments", paymentHandler.ListBookingPayments)

		// GET /api/bookings/{id}/invoices - All invoices issued for a booking
		r.Get("/api/bookings/{id}/invoices", invoiceHandler.ListBookingInvoices)
	})

	// ==================== ADMIN ROUTES ====================
	// Admin booking management routes
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// PUT /api/admin/bookings/{id}/cancel - Cancel an unpaid booking (admin)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
