package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "pending"
	BookingStatusPartiallyPaid BookingStatus = "partially_paid"
	BookingStatusPaid          BookingStatus = "paid"
	BookingStatusCancelled     BookingStatus = "cancelled"
)

type Booking struct {
	Base
	BookingNumber string          `db:"booking_number"`
	GuestID       uuid.UUID       `db:"guest_id"`
	RoomID        uuid.UUID       `db:"room_id"`
	CheckInDate   time.Time       `db:"check_in_date"`
	CheckOutDate  time.Time       `db:"check_out_date"`
	TotalCharges  decimal.Decimal `db:"total_charges"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Status        BookingStatus   `db:"status"`
}

// ApplyPayment adds amount to the paid balance and recomputes the status.
// It is the only place the paid-amount/status invariant lives; callers must
// hold the booking row lock while applying.
//
// A payment against a booking that is already fully paid is rejected. The
// payment that crosses the threshold may overpay; the surplus stays on the
// booking as credit and invoices report it as such.
func (b *Booking) ApplyPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}

	switch b.Status {
	case BookingStatusCancelled:
		return ConflictError{Resource: "booking", Msg: "booking is cancelled"}
	case BookingStatusPaid:
		return ConflictError{Resource: "booking", Msg: "booking is already fully paid"}
	}

	b.AmountPaid = b.AmountPaid.Add(amount)

	if b.AmountPaid.GreaterThanOrEqual(b.TotalCharges) {
		b.Status = BookingStatusPaid
	} else if b.AmountPaid.IsPositive() {
		b.Status = BookingStatusPartiallyPaid
	}

	return nil
}

// BalanceRemaining is the outstanding amount, clamped at zero.
func (b *Booking) BalanceRemaining() decimal.Decimal {
	balance := b.TotalCharges.Sub(b.AmountPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
