package usecase

import (
	"bytes"
	"fmt"

	"hotel-management/internal/data/entity"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// buildInvoicePDF renders an invoice snapshot to a printable A4 document.
func buildInvoicePDF(inv *entity.Invoice, booking *entity.Booking, guestName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.InvoiceNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+inv.InvoiceNumber)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+inv.CreatedAt.Format("2006-01-02"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Due Date   : "+inv.DueDate.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	if guestName == "" {
		guestName = "-"
	}
	pdf.Cell(0, 7, "Guest   : "+guestName)
	pdf.Ln(7)
	if booking != nil {
		pdf.Cell(0, 7, "Booking : "+booking.BookingNumber)
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Stay    : %s to %s",
			booking.CheckInDate.Format("2006-01-02"),
			booking.CheckOutDate.Format("2006-01-02"),
		))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	writeAmountLine(pdf, "Room charges", inv.RoomCharges)
	writeAmountLine(pdf, "Food charges", inv.FoodCharges)
	writeAmountLine(pdf, "Service charges", inv.ServiceCharges)
	pdf.Ln(2)

	writeAmountLine(pdf, "Subtotal", inv.Subtotal)
	writeAmountLine(pdf, fmt.Sprintf("Tax (%s%%)", inv.TaxRate.Mul(decimal.NewFromInt(100)).String()), inv.TaxAmount)
	writeAmountLine(pdf, "Discount", inv.DiscountAmount.Neg())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	writeAmountLine(pdf, "Total", inv.TotalAmount)
	pdf.SetFont("Helvetica", "", 11)
	writeAmountLine(pdf, "Balance due", inv.BalanceDue)
	if inv.CreditBalance.IsPositive() {
		writeAmountLine(pdf, "Credit balance", inv.CreditBalance)
	}
	pdf.Ln(8)

	if inv.Notes != nil && *inv.Notes != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+*inv.Notes, "", "", false)
		pdf.Ln(2)
	}
	if inv.Terms != nil && *inv.Terms != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Terms: "+*inv.Terms, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", inv.InvoiceNumber)
	return buf.Bytes(), filename, nil
}

func writeAmountLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(100, 6, label)
	pdf.CellFormat(60, 6, amount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(6)
}
