package models

import (
	"gorm.io/gorm"
)

// Customer is created the first time a RUT books a room and reused after
// that. Contact details are first-write-wins: later bookings with the same
// RUT never overwrite them.
type Customer struct {
	gorm.Model

	RUT      string `gorm:"column:rut;uniqueIndex;size:12" json:"rut"`
	FullName string `gorm:"size:150" json:"fullName"`
	Email    string `gorm:"size:150" json:"email"`
	Phone    string `gorm:"size:30" json:"phone"`

	Reservations []Reservation `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
}
