package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedRoom(repo *repository.Repository, roomNumber, nightlyRate string, active bool) *entity.Room {
	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber:  roomNumber,
		Type:        entity.RoomTypeStandard,
		NightlyRate: testDec(nightlyRate),
		IsActive:    active,
	}
	repo.Room.Create(context.Background(), room)
	return room
}

func TestCreateBookingComputesCharges(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	room := seedRoom(repo, "101", "150", true)

	booking, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		GuestName:    "Amina Rahman",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
	})
	if err != nil {
		t.Fatalf("create booking failed: %v", err)
	}

	if !booking.TotalCharges.Equal(testDec("300")) {
		t.Fatalf("2 nights at 150 should be 300, got %s", booking.TotalCharges)
	}
	if booking.Status != entity.BookingStatusPending {
		t.Fatalf("new bookings start pending, got %s", booking.Status)
	}
	if !booking.AmountPaid.IsZero() {
		t.Fatalf("new bookings start unpaid, got %s", booking.AmountPaid)
	}
	if booking.BookingNumber == "" {
		t.Fatal("booking number should be assigned")
	}
	if booking.GuestName != "Amina Rahman" {
		t.Fatalf("guest name should be carried, got %s", booking.GuestName)
	}
}

func TestCreateBookingRejectsCheckOutNotAfterCheckIn(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	room := seedRoom(repo, "101", "150", true)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		GuestName:    "Amina Rahman",
		CheckInDate:  "2026-09-03",
		CheckOutDate: "2026-09-03",
	})
	if !entity.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsInactiveRoom(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	room := seedRoom(repo, "102", "150", false)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		GuestName:    "Amina Rahman",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
	})
	if !entity.IsConflict(err) {
		t.Fatalf("expected conflict for inactive room, got %v", err)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:       uuid.New().String(),
		GuestName:    "Amina Rahman",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
	})
	if !entity.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	booking := seedBooking(repo, "100", entity.BookingStatusPending)

	if err := svc.CancelBooking(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	reloaded, _ := repo.Booking.FindByID(context.Background(), booking.ID)
	if reloaded.Status != entity.BookingStatusCancelled {
		t.Fatalf("status should be cancelled, got %s", reloaded.Status)
	}

	if err := svc.CancelBooking(context.Background(), booking.ID.String()); !entity.IsConflict(err) {
		t.Fatalf("cancelling twice should conflict, got %v", err)
	}
}

func TestCancelBookingRejectsPaidBooking(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	booking := seedPaidBooking(repo, "100", "100", entity.BookingStatusPaid)

	if err := svc.CancelBooking(context.Background(), booking.ID.String()); !entity.IsConflict(err) {
		t.Fatalf("paid bookings cannot be cancelled, got %v", err)
	}
}

func TestGetBookingDetail(t *testing.T) {
	repo, _ := newTestRepository()
	bookingSvc := NewBookingService(repo, zap.NewNop())
	paymentSvc := NewPaymentService(repo, zap.NewNop())
	invoiceSvc := NewInvoiceService(repo, newTestConfig(), zap.NewNop())
	room := seedRoom(repo, "103", "100", true)

	created, err := bookingSvc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		RoomID:       room.ID.String(),
		GuestName:    "Jamal Uddin",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-02",
	})
	if err != nil {
		t.Fatalf("create booking failed: %v", err)
	}

	staffID := uuid.New().String()
	if _, err := paymentSvc.ProcessPayment(context.Background(), staffID, &request.ProcessPaymentRequest{
		BookingID: created.ID,
		Amount:    testDec("40"),
		Method:    "cash",
	}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if _, err := invoiceSvc.GenerateInvoice(context.Background(), staffID, &request.GenerateInvoiceRequest{
		BookingID:   created.ID,
		DueDate:     "2026-09-15",
		RoomCharges: testDec("100"),
	}); err != nil {
		t.Fatalf("invoice failed: %v", err)
	}

	detail, err := bookingSvc.GetBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get booking failed: %v", err)
	}
	if len(detail.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(detail.Payments))
	}
	if detail.ActiveInvoice == nil {
		t.Fatal("active invoice should be present")
	}
	if detail.GuestName != "Jamal Uddin" {
		t.Fatalf("guest name should be resolved, got %s", detail.GuestName)
	}
	if detail.RoomNumber != "103" {
		t.Fatalf("room number should be resolved, got %s", detail.RoomNumber)
	}
}

func TestGetBookingPropagatesInvoiceReadFailure(t *testing.T) {
	repo, store := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	booking := seedBooking(repo, "100", entity.BookingStatusPending)

	store.invoiceReadErr = entity.PersistenceError{Op: "iterate invoice rows", Err: errors.New("unexpected EOF")}

	_, err := svc.GetBooking(context.Background(), booking.ID.String())
	if !entity.IsPersistence(err) {
		t.Fatalf("an invoice read failure must not look like a booking without invoices, got %v", err)
	}
}

func TestListBookingsPagination(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewBookingService(repo, zap.NewNop())
	for i := 0; i < 5; i++ {
		booking := seedBooking(repo, "100", entity.BookingStatusPending)
		// Spread creation times so ordering is deterministic.
		booking.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		repo.Booking.Create(context.Background(), booking)
	}

	page, err := svc.ListBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("list bookings failed: %v", err)
	}
	if len(page.Data) != 2 {
		t.Fatalf("expected 2 bookings on page, got %d", len(page.Data))
	}
	if page.Pagination.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.Pagination.TotalPages)
	}
}
