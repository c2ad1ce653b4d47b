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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingNumber(ctx context.Context, bookingNumber string) (*entity.Booking, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_number, guest_id, room_id, check_in_date, check_out_date,
		total_charges, amount_paid, status, created_at, updated_at`

func scanBooking(row pgx.Row, booking *entity.Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.GuestID,
		&booking.RoomID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.TotalCharges,
		&booking.AmountPaid,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingNumber,
		booking.GuestID,
		booking.RoomID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.TotalCharges,
		booking.AmountPaid,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
			zap.String("guest_id", booking.GuestID.String()),
		)
		return entity.PersistenceError{Op: fmt.Sprintf("create booking %s", booking.BookingNumber), Err: err}
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, id), &booking)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find booking %s", id.String()), Err: err}
	}

	return &booking, nil
}

func (r *bookingRepository) FindByBookingNumber(ctx context.Context, bookingNumber string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_number = $1`

	var booking entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, bookingNumber), &booking)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by number",
			zap.Error(err),
			zap.String("booking_number", bookingNumber),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find booking %s", bookingNumber), Err: err}
	}

	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, entity.PersistenceError{Op: "list bookings", Err: err}
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := scanBooking(rows, &booking); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, entity.PersistenceError{Op: "scan booking row", Err: err}
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, entity.PersistenceError{Op: "iterate booking rows", Err: err}
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, entity.PersistenceError{Op: "count bookings", Err: err}
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return entity.PersistenceError{Op: fmt.Sprintf("update booking %s status", bookingID.String()), Err: err}
	}

	if result.RowsAffected() == 0 {
		return entity.NotFoundError{Resource: "booking"}
	}

	return nil
}
