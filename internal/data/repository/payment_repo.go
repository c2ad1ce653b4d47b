package repository

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// RecordPayment applies a payment and the resulting booking update as a
	// single transaction and returns the updated booking.
	RecordPayment(ctx context.Context, payment *entity.Payment) (*entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, method, transaction_id, card_last_four,
		bank_name, cheque_number, mobile_provider, mobile_account, reference, notes,
		received_by, created_at`

func scanPayment(row pgx.Row, payment *entity.Payment) error {
	return row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.TransactionID,
		&payment.CardLastFour,
		&payment.BankName,
		&payment.ChequeNumber,
		&payment.MobileProvider,
		&payment.MobileAccount,
		&payment.Reference,
		&payment.Notes,
		&payment.ReceivedBy,
		&payment.CreatedAt,
	)
}

// RecordPayment serializes concurrent payments against the same booking with
// a row lock, so the read-modify-write of amount_paid/status cannot lose an
// update. Everything inside the transaction either commits together or not
// at all.
func (r *paymentRepository) RecordPayment(ctx context.Context, payment *entity.Payment) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction", zap.Error(err))
		return nil, entity.PersistenceError{Op: "begin payment transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	// Lock the booking row for the duration of the transaction.
	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	var booking entity.Booking
	err = scanBooking(tx.QueryRow(ctx, lockQuery, payment.BookingID), &booking)
	if err == pgx.ErrNoRows {
		return nil, entity.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		r.log.Error("Failed to lock booking for payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("lock booking %s", payment.BookingID.String()), Err: err}
	}

	// Duplicate externally-issued transaction IDs would double-count.
	if payment.TransactionID != nil {
		dupQuery := `
			SELECT EXISTS (
				SELECT 1 FROM payments
				WHERE booking_id = $1 AND method = $2 AND transaction_id = $3
			)
		`

		var exists bool
		if err := tx.QueryRow(ctx, dupQuery, payment.BookingID, payment.Method, *payment.TransactionID).Scan(&exists); err != nil {
			r.log.Error("Failed to check duplicate transaction",
				zap.Error(err),
				zap.String("booking_id", payment.BookingID.String()),
			)
			return nil, entity.PersistenceError{Op: "check duplicate transaction", Err: err}
		}
		if exists {
			return nil, entity.ConflictError{Resource: "payment", Msg: "duplicate transaction id for this booking"}
		}
	}

	if err := booking.ApplyPayment(payment.Amount); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(ctx, insertQuery,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.TransactionID,
		payment.CardLastFour,
		payment.BankName,
		payment.ChequeNumber,
		payment.MobileProvider,
		payment.MobileAccount,
		payment.Reference,
		payment.Notes,
		payment.ReceivedBy,
		payment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("insert payment for booking %s", payment.BookingID.String()), Err: err}
	}

	updateQuery := `UPDATE bookings SET amount_paid = $2, status = $3, updated_at = NOW() WHERE id = $1`

	if _, err := tx.Exec(ctx, updateQuery, booking.ID, booking.AmountPaid, booking.Status); err != nil {
		r.log.Error("Failed to update booking balance",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("update booking %s balance", booking.ID.String()), Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, entity.PersistenceError{Op: "commit payment transaction", Err: err}
	}

	return &booking, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment entity.Payment
	err := scanPayment(r.db.QueryRow(ctx, query, id), &payment)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find payment %s", id.String()), Err: err}
	}

	return &payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find payments for booking %s", bookingID.String()), Err: err}
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		if err := scanPayment(rows, &payment); err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, entity.PersistenceError{Op: "scan payment row", Err: err}
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, entity.PersistenceError{Op: "iterate payment rows", Err: err}
	}

	return payments, nil
}
