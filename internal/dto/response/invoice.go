package response

import (
	"time"

	"hotel-management/internal/data/entity"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	BookingID      string          `json:"booking_id"`
	DueDate        string          `json:"due_date"`
	RoomCharges    decimal.Decimal `json:"room_charges"`
	FoodCharges    decimal.Decimal `json:"food_charges"`
	ServiceCharges decimal.Decimal `json:"service_charges"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	BalanceDue     decimal.Decimal `json:"balance_due"`
	CreditBalance  decimal.Decimal `json:"credit_balance"`
	Notes          *string         `json:"notes,omitempty"`
	Terms          *string         `json:"terms,omitempty"`
	GeneratedBy    string          `json:"generated_by"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Superseded     bool            `json:"superseded"`
}

func InvoiceToResponse(invoice *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             invoice.ID.String(),
		InvoiceNumber:  invoice.InvoiceNumber,
		BookingID:      invoice.BookingID.String(),
		DueDate:        invoice.DueDate.Format("2006-01-02"),
		RoomCharges:    invoice.RoomCharges,
		FoodCharges:    invoice.FoodCharges,
		ServiceCharges: invoice.ServiceCharges,
		TaxRate:        invoice.TaxRate,
		DiscountAmount: invoice.DiscountAmount,
		Subtotal:       invoice.Subtotal,
		TaxAmount:      invoice.TaxAmount,
		TotalAmount:    invoice.TotalAmount,
		BalanceDue:     invoice.BalanceDue,
		CreditBalance:  invoice.CreditBalance,
		Notes:          invoice.Notes,
		Terms:          invoice.Terms,
		GeneratedBy:    invoice.GeneratedBy.String(),
		GeneratedAt:    invoice.CreatedAt,
		Superseded:     invoice.Superseded,
	}
}
