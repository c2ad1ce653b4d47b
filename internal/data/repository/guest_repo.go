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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, full_name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.FullName,
		guest.Phone,
		guest.Email,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return entity.PersistenceError{Op: fmt.Sprintf("create guest %s", guest.ID.String()), Err: err}
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, full_name, phone, email, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.FullName,
		&guest.Phone,
		&guest.Email,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find guest %s", id.String()), Err: err}
	}

	return &guest, nil
}
