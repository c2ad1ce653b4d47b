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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, entity.ValidationError{Msg: utils.FormatValidationErrors(errs)}
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, entity.ValidationError{Field: "room_id", Msg: "invalid room id", Err: err}
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, entity.ValidationError{Field: "check_in_date", Msg: "must be a date in 2006-01-02 format", Err: err}
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return nil, entity.ValidationError{Field: "check_out_date", Msg: "must be a date in 2006-01-02 format", Err: err}
	}

	if !checkOut.After(checkIn) {
		return nil, entity.ValidationError{Field: "check_out_date", Msg: "must be after check-in date"}
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, entity.NotFoundError{Resource: "room"}
	}
	if !room.IsActive {
		return nil, entity.ConflictError{Resource: "room", Msg: "room is not available"}
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	totalCharges := room.NightlyRate.Mul(decimal.NewFromInt(nights))

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName: req.GuestName,
		Phone:    req.GuestPhone,
		Email:    req.GuestEmail,
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err))
		return nil, err
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingNumber: utils.GenerateBookingNumber(),
		GuestID:       guest.ID,
		RoomID:        roomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalCharges:  totalCharges,
		AmountPaid:    decimal.Zero,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_number", booking.BookingNumber),
		zap.String("room_number", room.RoomNumber),
		zap.Int64("nights", nights),
		zap.String("total_charges", totalCharges.String()),
	)

	resp := response.BookingToResponse(booking)
	resp.GuestName = guest.FullName
	resp.RoomNumber = room.RoomNumber
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
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

	resp := response.BookingToResponse(booking)

	if guest, err := s.repo.Guest.FindByID(ctx, booking.GuestID); err == nil && guest != nil {
		resp.GuestName = guest.FullName
	}
	if room, err := s.repo.Room.FindByID(ctx, booking.RoomID); err == nil && room != nil {
		resp.RoomNumber = room.RoomNumber
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments for booking %s: %w", bookingID, err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	invoices, err := s.repo.Invoice.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list invoices for booking %s: %w", bookingID, err)
	}

	var activeInvoice *response.InvoiceResponse
	for _, invoice := range invoices {
		if !invoice.Superseded {
			invResp := response.InvoiceToResponse(invoice)
			activeInvoice = &invResp
			break
		}
	}

	return &response.BookingDetailResponse{
		BookingResponse: resp,
		Payments:        paymentResponses,
		ActiveInvoice:   activeInvoice,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, err
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return entity.ValidationError{Field: "booking_id", Msg: "invalid booking id", Err: err}
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return entity.NotFoundError{Resource: "booking"}
	}

	switch booking.Status {
	case entity.BookingStatusCancelled:
		return entity.ConflictError{Resource: "booking", Msg: "booking is already cancelled"}
	case entity.BookingStatusPaid:
		return entity.ConflictError{Resource: "booking", Msg: "paid bookings cannot be cancelled"}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_number", booking.BookingNumber),
	)

	return nil
}
