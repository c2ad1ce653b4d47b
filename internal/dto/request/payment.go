package request

import (
	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest carries a payment against a booking. Amount accepts
// a JSON number or string and must be strictly positive; method-specific
// fields are checked by the payment service (card_last_four for card,
// provider and account for mobile banking).
type ProcessPaymentRequest struct {
	BookingID      string          `json:"booking_id" validate:"required,uuid4"`
	Amount         decimal.Decimal `json:"amount" validate:"-"`
	Method         string          `json:"method" validate:"required,oneof=cash card bank_transfer mobile_banking online"`
	TransactionID  *string         `json:"transaction_id,omitempty" validate:"omitempty,min=1,max=100"`
	CardLastFour   *string         `json:"card_last_four,omitempty" validate:"omitempty,len=4,numeric"`
	BankName       *string         `json:"bank_name,omitempty" validate:"omitempty,max=100"`
	ChequeNumber   *string         `json:"cheque_number,omitempty" validate:"omitempty,max=50"`
	MobileProvider *string         `json:"mobile_provider,omitempty" validate:"omitempty,max=50"`
	MobileAccount  *string         `json:"mobile_account,omitempty" validate:"omitempty,max=50"`
	Reference      *string         `json:"reference,omitempty" validate:"omitempty,max=255"`
	Notes          *string         `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
