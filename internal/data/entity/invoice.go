package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is an immutable snapshot of a booking's charges at generation
// time. Regeneration produces a new invoice that supersedes the prior one
// for display; superseded invoices stay retrievable for audit.
type Invoice struct {
	BaseSimple
	InvoiceNumber  string          `db:"invoice_number"`
	BookingID      uuid.UUID       `db:"booking_id"`
	DueDate        time.Time       `db:"due_date"`
	RoomCharges    decimal.Decimal `db:"room_charges"`
	FoodCharges    decimal.Decimal `db:"food_charges"`
	ServiceCharges decimal.Decimal `db:"service_charges"`
	TaxRate        decimal.Decimal `db:"tax_rate"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	BalanceDue     decimal.Decimal `db:"balance_due"`
	CreditBalance  decimal.Decimal `db:"credit_balance"`
	Notes          *string         `db:"notes"`
	Terms          *string         `db:"terms"`
	GeneratedBy    uuid.UUID       `db:"generated_by"`
	Superseded     bool            `db:"superseded"`
}

var decimalOne = decimal.NewFromInt(1)

// ComputeTotals fills the derived fields from the charge inputs and the
// booking's paid amount. Tax rate is a fraction in [0,1]. Tax and total are
// rounded to 2 decimal places; a negative balance is clamped at zero and
// reported as credit.
func (inv *Invoice) ComputeTotals(amountPaid decimal.Decimal) error {
	if inv.RoomCharges.IsNegative() {
		return ValidationError{Field: "room_charges", Msg: "must not be negative"}
	}
	if inv.FoodCharges.IsNegative() {
		return ValidationError{Field: "food_charges", Msg: "must not be negative"}
	}
	if inv.ServiceCharges.IsNegative() {
		return ValidationError{Field: "service_charges", Msg: "must not be negative"}
	}
	if inv.TaxRate.IsNegative() || inv.TaxRate.GreaterThan(decimalOne) {
		return ValidationError{Field: "tax_rate", Msg: "must be a fraction between 0 and 1"}
	}
	if inv.DiscountAmount.IsNegative() {
		return ValidationError{Field: "discount_amount", Msg: "must not be negative"}
	}

	subtotal := inv.RoomCharges.Add(inv.FoodCharges).Add(inv.ServiceCharges)
	if inv.DiscountAmount.GreaterThan(subtotal) {
		return ValidationError{Field: "discount_amount", Msg: "must not exceed the subtotal"}
	}

	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal.Mul(inv.TaxRate).Round(2)
	inv.TotalAmount = subtotal.Add(inv.TaxAmount).Sub(inv.DiscountAmount).Round(2)

	balance := inv.TotalAmount.Sub(amountPaid)
	if balance.IsNegative() {
		inv.BalanceDue = decimal.Zero
		inv.CreditBalance = balance.Neg()
	} else {
		inv.BalanceDue = balance
		inv.CreditBalance = decimal.Zero
	}

	return nil
}
