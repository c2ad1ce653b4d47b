package response

import (
	"time"

	"hotel-management/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"booking_id"`
	Amount         decimal.Decimal      `json:"amount"`
	Method         entity.PaymentMethod `json:"method"`
	TransactionID  *string              `json:"transaction_id,omitempty"`
	CardLastFour   *string              `json:"card_last_four,omitempty"`
	BankName       *string              `json:"bank_name,omitempty"`
	ChequeNumber   *string              `json:"cheque_number,omitempty"`
	MobileProvider *string              `json:"mobile_provider,omitempty"`
	MobileAccount  *string              `json:"mobile_account,omitempty"`
	Reference      *string              `json:"reference,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
	ReceivedBy     string               `json:"received_by"`
	ReceivedAt     time.Time            `json:"received_at"`
}

// PaymentResultResponse also carries the booking balance after the payment
// was applied.
type PaymentResultResponse struct {
	Payment       PaymentResponse      `json:"payment"`
	BookingStatus entity.BookingStatus `json:"booking_status"`
	AmountPaid    decimal.Decimal      `json:"amount_paid"`
	TotalCharges  decimal.Decimal      `json:"total_charges"`
	Balance       decimal.Decimal      `json:"balance"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             payment.ID.String(),
		BookingID:      payment.BookingID.String(),
		Amount:         payment.Amount,
		Method:         payment.Method,
		TransactionID:  payment.TransactionID,
		CardLastFour:   payment.CardLastFour,
		BankName:       payment.BankName,
		ChequeNumber:   payment.ChequeNumber,
		MobileProvider: payment.MobileProvider,
		MobileAccount:  payment.MobileAccount,
		Reference:      payment.Reference,
		Notes:          payment.Notes,
		ReceivedBy:     payment.ReceivedBy.String(),
		ReceivedAt:     payment.CreatedAt,
	}
}
