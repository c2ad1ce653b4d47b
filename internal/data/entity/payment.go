package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodMobileBanking PaymentMethod = "mobile_banking"
	PaymentMethodOnline        PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodMobileBanking, PaymentMethodOnline:
		return true
	}
	return false
}

// Payment is an append-only ledger record. Corrections are made with a new
// compensating record, never by mutating an existing one.
type Payment struct {
	BaseSimple
	BookingID      uuid.UUID       `db:"booking_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         PaymentMethod   `db:"method"`
	TransactionID  *string         `db:"transaction_id"`
	CardLastFour   *string         `db:"card_last_four"`
	BankName       *string         `db:"bank_name"`
	ChequeNumber   *string         `db:"cheque_number"`
	MobileProvider *string         `db:"mobile_provider"`
	MobileAccount  *string         `db:"mobile_account"`
	Reference      *string         `db:"reference"`
	Notes          *string         `db:"notes"`
	ReceivedBy     uuid.UUID       `db:"received_by"`
}
