package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/internal/dto/response"
	"hotel-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceService interface {
	// GenerateInvoice computes a point-in-time snapshot of the booking's
	// charges; it never mutates booking or payment records.
	GenerateInvoice(ctx context.Context, generatedBy string, req *request.GenerateInvoiceRequest) (*response.InvoiceResponse, error)
	GetInvoice(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error)
	ListBookingInvoices(ctx context.Context, bookingID string) ([]response.InvoiceResponse, error)
	RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error)
}

type invoiceService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, config *utils.Config, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "invoice")),
	}
}

func (s *invoiceService) GenerateInvoice(ctx context.Context, generatedBy string, req *request.GenerateInvoiceRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Generate invoice validation failed", zap.Any("errors", errs))
		return nil, entity.ValidationError{Msg: utils.FormatValidationErrors(errs)}
	}

	generatedByID, err := uuid.Parse(generatedBy)
	if err != nil {
		return nil, entity.ValidationError{Field: "generated_by", Msg: "invalid user id", Err: err}
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, entity.ValidationError{Field: "booking_id", Msg: "invalid booking id", Err: err}
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, entity.ValidationError{Field: "due_date", Msg: "must be a date in 2006-01-02 format", Err: err}
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, entity.NotFoundError{Resource: "booking"}
	}

	terms := req.Terms
	if terms == nil && s.config.Invoice.DefaultTerms != "" {
		defaultTerms := s.config.Invoice.DefaultTerms
		terms = &defaultTerms
	}

	invoice := &entity.Invoice{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		InvoiceNumber:  utils.GenerateInvoiceNumber(),
		BookingID:      bookingID,
		DueDate:        dueDate,
		RoomCharges:    req.RoomCharges,
		FoodCharges:    req.FoodCharges,
		ServiceCharges: req.ServiceCharges,
		TaxRate:        req.TaxRate,
		DiscountAmount: req.DiscountAmount,
		Notes:          req.Notes,
		Terms:          terms,
		GeneratedBy:    generatedByID,
	}

	// The booking's paid amount at this instant; concurrent payments may
	// make the snapshot stale, which is fine for a point-in-time invoice.
	if err := invoice.ComputeTotals(booking.AmountPaid); err != nil {
		s.log.Warn("Invoice rejected",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, err
	}

	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		s.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, err
	}

	s.log.Info("Invoice generated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("booking_id", req.BookingID),
		zap.String("total", invoice.TotalAmount.String()),
		zap.String("balance_due", invoice.BalanceDue.String()),
	)

	resp := response.InvoiceToResponse(invoice)
	return &resp, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error) {
	invoice, err := s.findInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	resp := response.InvoiceToResponse(invoice)
	return &resp, nil
}

func (s *invoiceService) ListBookingInvoices(ctx context.Context, bookingID string) ([]response.InvoiceResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, entity.ValidationError{Field: "booking_id", Msg: "invalid booking id", Err: err}
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, entity.NotFoundError{Resource: "booking"}
	}

	invoices, err := s.repo.Invoice.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list invoices for booking %s: %w", bookingID, err)
	}

	invoiceResponses := make([]response.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		invoiceResponses[i] = response.InvoiceToResponse(invoice)
	}

	return invoiceResponses, nil
}

func (s *invoiceService) RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := s.findInvoice(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	booking, err := s.repo.Booking.FindByID(ctx, invoice.BookingID)
	if err != nil {
		return nil, "", fmt.Errorf("find booking %s: %w", invoice.BookingID.String(), err)
	}

	var guestName string
	if booking != nil {
		if guest, err := s.repo.Guest.FindByID(ctx, booking.GuestID); err == nil && guest != nil {
			guestName = guest.FullName
		}
	}

	pdfBytes, filename, err := buildInvoicePDF(invoice, booking, guestName)
	if err != nil {
		s.log.Error("Failed to render invoice PDF",
			zap.Error(err),
			zap.String("invoice_id", invoiceID),
		)
		return nil, "", fmt.Errorf("render invoice %s: %w", invoiceID, err)
	}

	s.log.Info("Invoice PDF rendered",
		zap.String("invoice_id", invoiceID),
		zap.String("filename", filename),
	)

	return pdfBytes, filename, nil
}

func (s *invoiceService) findInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, entity.ValidationError{Field: "invoice_id", Msg: "invalid invoice id", Err: err}
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find invoice %s: %w", invoiceID, err)
	}
	if invoice == nil {
		return nil, entity.NotFoundError{Resource: "invoice"}
	}

	return invoice, nil
}
