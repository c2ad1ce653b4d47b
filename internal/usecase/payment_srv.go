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

type PaymentService interface {
	// ProcessPayment validates and records a payment against a booking and
	// returns the payment together with the updated booking balance.
	ProcessPayment(ctx context.Context, receivedBy string, req *request.ProcessPaymentRequest) (*response.PaymentResultResponse, error)
	ListBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, receivedBy string, req *request.ProcessPaymentRequest) (*response.PaymentResultResponse, error) {
	// All validation happens before any persistence attempt.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, entity.ValidationError{Msg: utils.FormatValidationErrors(errs)}
	}

	if !req.Amount.IsPositive() {
		return nil, entity.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}

	method := entity.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, entity.ValidationError{Field: "method", Msg: "unknown payment method"}
	}

	if err := validateMethodAttributes(method, req); err != nil {
		return nil, err
	}

	receivedByID, err := uuid.Parse(receivedBy)
	if err != nil {
		return nil, entity.ValidationError{Field: "received_by", Msg: "invalid user id", Err: err}
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, entity.ValidationError{Field: "booking_id", Msg: "invalid booking id", Err: err}
	}

	// Fast existence check; the authoritative state check happens again
	// under the row lock inside RecordPayment.
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, entity.NotFoundError{Resource: "booking"}
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:      bookingID,
		Amount:         req.Amount,
		Method:         method,
		TransactionID:  req.TransactionID,
		CardLastFour:   req.CardLastFour,
		BankName:       req.BankName,
		ChequeNumber:   req.ChequeNumber,
		MobileProvider: req.MobileProvider,
		MobileAccount:  req.MobileAccount,
		Reference:      req.Reference,
		Notes:          req.Notes,
		ReceivedBy:     receivedByID,
	}

	updated, err := s.repo.Payment.RecordPayment(ctx, payment)
	if err != nil {
		s.log.Warn("Payment rejected",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.String("method", req.Method),
		)
		return nil, err
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.String("method", req.Method),
		zap.String("amount", req.Amount.String()),
		zap.String("booking_status", string(updated.Status)),
	)

	return &response.PaymentResultResponse{
		Payment:       response.PaymentToResponse(payment),
		BookingStatus: updated.Status,
		AmountPaid:    updated.AmountPaid,
		TotalCharges:  updated.TotalCharges,
		Balance:       updated.BalanceRemaining(),
	}, nil
}

func (s *paymentService) ListBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
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

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments for booking %s: %w", bookingID, err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

// validateMethodAttributes enforces the per-method required fields.
func validateMethodAttributes(method entity.PaymentMethod, req *request.ProcessPaymentRequest) error {
	switch method {
	case entity.PaymentMethodCard:
		if req.CardLastFour == nil || len(*req.CardLastFour) != 4 {
			return entity.ValidationError{Field: "card_last_four", Msg: "exactly 4 digits required for card payments"}
		}
		for _, c := range *req.CardLastFour {
			if c < '0' || c > '9' {
				return entity.ValidationError{Field: "card_last_four", Msg: "exactly 4 digits required for card payments"}
			}
		}
	case entity.PaymentMethodMobileBanking:
		if req.MobileProvider == nil || *req.MobileProvider == "" {
			return entity.ValidationError{Field: "mobile_provider", Msg: "required for mobile banking payments"}
		}
		if req.MobileAccount == nil || *req.MobileAccount == "" {
			return entity.ValidationError{Field: "mobile_account", Msg: "required for mobile banking payments"}
		}
	}
	return nil
}
