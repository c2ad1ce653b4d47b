package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-management/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func bookingRow(bookingID uuid.UUID, totalCharges, amountPaid string, status entity.BookingStatus) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "booking_number", "guest_id", "room_id", "check_in_date", "check_out_date",
		"total_charges", "amount_paid", "status", "created_at", "updated_at",
	}).AddRow(
		bookingID, "BKG-20260801-120000-0001", uuid.New(), uuid.New(), now, now.AddDate(0, 0, 2),
		decimal.RequireFromString(totalCharges), decimal.RequireFromString(amountPaid), status, now, now,
	)
}

func testPayment(bookingID uuid.UUID, amount string) *entity.Payment {
	return &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:  bookingID,
		Amount:     decimal.RequireFromString(amount),
		Method:     entity.PaymentMethodCash,
		ReceivedBy: uuid.New(),
	}
}

func TestRecordPaymentCommitsBalanceAndStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewPaymentRepository(mock, zap.NewNop())
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, "100", "40", entity.BookingStatusPartiallyPaid))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(anyArgs(14)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE bookings SET amount_paid").
		WithArgs(bookingID, pgxmock.AnyArg(), entity.BookingStatusPaid).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	booking, err := repo.RecordPayment(context.Background(), testPayment(bookingID, "60"))
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}

	if !booking.AmountPaid.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("amount paid should be 100, got %s", booking.AmountPaid)
	}
	if booking.Status != entity.BookingStatusPaid {
		t.Fatalf("status should be paid, got %s", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentDuplicateTransactionRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewPaymentRepository(mock, zap.NewNop())
	bookingID := uuid.New()

	payment := testPayment(bookingID, "50")
	payment.Method = entity.PaymentMethodOnline
	txnID := "TXN-1001"
	payment.TransactionID = &txnID

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, "100", "0", entity.BookingStatusPending))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(bookingID, entity.PaymentMethodOnline, txnID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err = repo.RecordPayment(context.Background(), payment)
	if !entity.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate transaction, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewPaymentRepository(mock, zap.NewNop())
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err = repo.RecordPayment(context.Background(), testPayment(bookingID, "50"))
	if !entity.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentInsertFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewPaymentRepository(mock, zap.NewNop())
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, "100", "0", entity.BookingStatusPending))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(anyArgs(14)...).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = repo.RecordPayment(context.Background(), testPayment(bookingID, "50"))
	if !entity.IsPersistence(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentRejectsFullyPaidBookingWithoutWriting(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewPaymentRepository(mock, zap.NewNop())
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, "100", "100", entity.BookingStatusPaid))
	mock.ExpectRollback()

	_, err = repo.RecordPayment(context.Background(), testPayment(bookingID, "10"))
	if !entity.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
