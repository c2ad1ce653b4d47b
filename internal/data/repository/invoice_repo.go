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

type InvoiceRepository interface {
	// Create persists the invoice and marks prior invoices for the same
	// booking superseded, in one transaction.
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Invoice, error)
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

const invoiceColumns = `id, invoice_number, booking_id, due_date, room_charges, food_charges,
		service_charges, tax_rate, discount_amount, subtotal, tax_amount, total_amount,
		balance_due, credit_balance, notes, terms, generated_by, superseded, created_at`

func scanInvoice(row pgx.Row, invoice *entity.Invoice) error {
	return row.Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.BookingID,
		&invoice.DueDate,
		&invoice.RoomCharges,
		&invoice.FoodCharges,
		&invoice.ServiceCharges,
		&invoice.TaxRate,
		&invoice.DiscountAmount,
		&invoice.Subtotal,
		&invoice.TaxAmount,
		&invoice.TotalAmount,
		&invoice.BalanceDue,
		&invoice.CreditBalance,
		&invoice.Notes,
		&invoice.Terms,
		&invoice.GeneratedBy,
		&invoice.Superseded,
		&invoice.CreatedAt,
	)
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin invoice transaction", zap.Error(err))
		return entity.PersistenceError{Op: "begin invoice transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	supersedeQuery := `UPDATE invoices SET superseded = TRUE WHERE booking_id = $1 AND superseded = FALSE`

	if _, err := tx.Exec(ctx, supersedeQuery, invoice.BookingID); err != nil {
		r.log.Error("Failed to supersede prior invoices",
			zap.Error(err),
			zap.String("booking_id", invoice.BookingID.String()),
		)
		return entity.PersistenceError{Op: "supersede prior invoices", Err: err}
	}

	insertQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = tx.Exec(ctx, insertQuery,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.BookingID,
		invoice.DueDate,
		invoice.RoomCharges,
		invoice.FoodCharges,
		invoice.ServiceCharges,
		invoice.TaxRate,
		invoice.DiscountAmount,
		invoice.Subtotal,
		invoice.TaxAmount,
		invoice.TotalAmount,
		invoice.BalanceDue,
		invoice.CreditBalance,
		invoice.Notes,
		invoice.Terms,
		invoice.GeneratedBy,
		invoice.Superseded,
		invoice.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert invoice",
			zap.Error(err),
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.String("booking_id", invoice.BookingID.String()),
		)
		return entity.PersistenceError{Op: fmt.Sprintf("insert invoice %s", invoice.InvoiceNumber), Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit invoice transaction", zap.Error(err))
		return entity.PersistenceError{Op: "commit invoice transaction", Err: err}
	}

	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	var invoice entity.Invoice
	err := scanInvoice(r.db.QueryRow(ctx, query, id), &invoice)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice by ID",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find invoice %s", id.String()), Err: err}
	}

	return &invoice, nil
}

func (r *invoiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find invoices by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find invoices for booking %s", bookingID.String()), Err: err}
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var invoice entity.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			r.log.Error("Failed to scan invoice row", zap.Error(err))
			return nil, entity.PersistenceError{Op: "scan invoice row", Err: err}
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, entity.PersistenceError{Op: "iterate invoice rows", Err: err}
	}

	return invoices, nil
}
