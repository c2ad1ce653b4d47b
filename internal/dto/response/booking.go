package response

import (
	"time"

	"hotel-management/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	BookingNumber string               `json:"booking_number"`
	GuestID       string               `json:"guest_id"`
	GuestName     string               `json:"guest_name,omitempty"`
	RoomID        string               `json:"room_id"`
	RoomNumber    string               `json:"room_number,omitempty"`
	CheckInDate   string               `json:"check_in_date"`
	CheckOutDate  string               `json:"check_out_date"`
	TotalCharges  decimal.Decimal      `json:"total_charges"`
	AmountPaid    decimal.Decimal      `json:"amount_paid"`
	Balance       decimal.Decimal      `json:"balance"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payments      []PaymentResponse `json:"payments"`
	ActiveInvoice *InvoiceResponse  `json:"active_invoice,omitempty"`
}

// BookingToResponse converts the entity; guest and room names are filled by
// the caller when loaded.
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID.String(),
		RoomID:        booking.RoomID.String(),
		CheckInDate:   booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate:  booking.CheckOutDate.Format("2006-01-02"),
		TotalCharges:  booking.TotalCharges,
		AmountPaid:    booking.AmountPaid,
		Balance:       booking.BalanceRemaining(),
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}
