package request

import (
	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest. TaxRate is a fraction, 0.10 means 10%. Charges and
// discount must be non-negative; the invoice service validates ranges.
type GenerateInvoiceRequest struct {
	BookingID      string          `json:"booking_id" validate:"required,uuid4"`
	DueDate        string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	RoomCharges    decimal.Decimal `json:"room_charges" validate:"-"`
	FoodCharges    decimal.Decimal `json:"food_charges" validate:"-"`
	ServiceCharges decimal.Decimal `json:"service_charges" validate:"-"`
	TaxRate        decimal.Decimal `json:"tax_rate" validate:"-"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"-"`
	Notes          *string         `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Terms          *string         `json:"terms,omitempty" validate:"omitempty,max=2000"`
}
