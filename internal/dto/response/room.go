package response

import (
	"hotel-management/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID          string          `json:"id"`
	RoomNumber  string          `json:"room_number"`
	Type        entity.RoomType `json:"type"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	resp := RoomResponse{
		ID:          room.ID.String(),
		RoomNumber:  room.RoomNumber,
		Type:        room.Type,
		NightlyRate: room.NightlyRate,
		IsActive:    room.IsActive,
	}
	if room.ImagePath != "" {
		resp.ImageURL = "/static/rooms/" + room.ImagePath
	}
	return resp
}
