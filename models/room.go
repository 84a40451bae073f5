package models

import (
	"gorm.io/gorm"
)

// Room status values. Status is an admin-controlled field; occupancy for
// booking purposes is derived from active reservations, not from this enum.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	// RoomCode is generated once at creation and never changes. It is the
	// public, URL-safe identifier for the room.
	RoomCode string `gorm:"column:room_code;uniqueIndex;size:64" json:"roomCode"`

	Type     string  `gorm:"size:100" json:"type"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
	Status   string  `gorm:"size:20;default:available" json:"status"`

	Reservations []Reservation `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT" json:"-"`
}

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
