package wire

import (
	"hotel-management/internal/adaptor"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/middleware"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/payments - Record a payment against a booking
		r.Post("/api/payments", paymentHandler.ProcessPayment)
	})
}
