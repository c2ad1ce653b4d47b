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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAllActive(ctx context.Context) ([]*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, room_number, type, nightly_rate, image_path, is_active, created_at, updated_at`

func scanRoom(row pgx.Row, room *entity.Room) error {
	return row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.NightlyRate,
		&room.ImagePath,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Type,
		room.NightlyRate,
		room.ImagePath,
		room.IsActive,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return entity.PersistenceError{Op: fmt.Sprintf("create room %s", room.RoomNumber), Err: err}
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room entity.Room
	err := scanRoom(r.db.QueryRow(ctx, query, id), &room)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, entity.PersistenceError{Op: fmt.Sprintf("find room %s", id.String()), Err: err}
	}

	return &room, nil
}

func (r *roomRepository) FindAllActive(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE is_active = TRUE ORDER BY room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active rooms", zap.Error(err))
		return nil, entity.PersistenceError{Op: "list active rooms", Err: err}
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := scanRoom(rows, &room); err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, entity.PersistenceError{Op: "scan room row", Err: err}
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, entity.PersistenceError{Op: "iterate room rows", Err: err}
	}

	return rooms, nil
}
