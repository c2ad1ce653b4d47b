package repository

import (
	"hotel-management/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Guest   GuestRepository
	Room    RoomRepository
	Booking BookingRepository
	Payment PaymentRepository
	Invoice InvoiceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Guest:   NewGuestRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Invoice: NewInvoiceRepository(db, log),
	}
}
