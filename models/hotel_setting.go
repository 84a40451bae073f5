package models

import "time"

// HotelSetting is a single-row table: hotel contact details plus the deposit
// percentage applied to new reservations.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DefaultDepositPercent int `gorm:"column:default_deposit_percent;default:30" json:"default_deposit_percent"`
}
