package repository

import (
	"context"
	"testing"
	"time"

	"hotel-management/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// anyArgs returns n pgxmock.AnyArg matchers; pgxmock requires the expected
// argument count to match the actual call exactly.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestInvoiceCreateSupersedesPriorInOneTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewInvoiceRepository(mock, zap.NewNop())

	invoice := &entity.Invoice{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		InvoiceNumber: "INV-20260801-120000-0001",
		BookingID:     uuid.New(),
		DueDate:       time.Now().AddDate(0, 0, 14),
		RoomCharges:   decimal.RequireFromString("250"),
		TaxRate:       decimal.RequireFromString("0.1"),
		Subtotal:      decimal.RequireFromString("250"),
		TaxAmount:     decimal.RequireFromString("25"),
		TotalAmount:   decimal.RequireFromString("275"),
		BalanceDue:    decimal.RequireFromString("275"),
		GeneratedBy:   uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invoices SET superseded = TRUE").
		WithArgs(invoice.BookingID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO invoices").
		WithArgs(anyArgs(19)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), invoice); err != nil {
		t.Fatalf("create invoice failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInvoiceCreateRollsBackWhenInsertFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	defer mock.Close()

	repo := NewInvoiceRepository(mock, zap.NewNop())

	invoice := &entity.Invoice{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		InvoiceNumber: "INV-20260801-120000-0002",
		BookingID:     uuid.New(),
		GeneratedBy:   uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invoices SET superseded = TRUE").
		WithArgs(invoice.BookingID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("INSERT INTO invoices").
		WithArgs(anyArgs(19)...).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	err = repo.Create(context.Background(), invoice)
	if !entity.IsPersistence(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
