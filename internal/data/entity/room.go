package entity

import (
	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

type Room struct {
	Base
	RoomNumber  string          `db:"room_number"`
	Type        RoomType        `db:"type"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	ImagePath   string          `db:"image_path"`
	IsActive    bool            `db:"is_active"`
}
