package request

import (
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required,min=1,max=10"`
	Type        string          `json:"type" validate:"required,oneof=standard deluxe suite"`
	NightlyRate decimal.Decimal `json:"nightly_rate" validate:"-"`
	ImagePath   string          `json:"image_path" validate:"omitempty,max=255"`
}
