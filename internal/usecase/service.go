package usecase

import (
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Room    RoomService
	Booking BookingService
	Payment PaymentService
	Invoice InvoiceService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, log),
		Invoice: NewInvoiceService(repo, config, log),
	}
}
