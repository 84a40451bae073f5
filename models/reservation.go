package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// ActiveReservationStatuses are the statuses that block room availability.
// Cancelled and completed reservations never exclude a room.
var ActiveReservationStatuses = []string{ReservationStatusPending, ReservationStatusConfirmed}

type Reservation struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// PublicID is the opaque internal identifier exposed over the API;
	// Code is the short confirmation code handed to the customer.
	PublicID string `gorm:"column:public_id;uniqueIndex;size:36" json:"id"`
	Code     string `gorm:"uniqueIndex;size:16" json:"code"`

	CustomerID uint `gorm:"index;column:customer_id" json:"-"`
	RoomID     uint `gorm:"index;column:room_id" json:"-"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	Status string `gorm:"size:20;default:pending" json:"status"`

	// TotalPrice and DepositPercent are fixed at creation; the deposit
	// amount is always derived, never stored.
	TotalPrice     float64 `gorm:"column:total_price" json:"totalPrice"`
	DepositPercent int     `gorm:"column:deposit_percent;default:30" json:"depositPercent"`

	Customer Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Room     Room      `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// DepositAmount returns the deposit required to confirm this reservation.
func (r Reservation) DepositAmount() float64 {
	return r.TotalPrice * float64(r.DepositPercent) / 100
}

// Active reports whether this reservation blocks the room's availability.
func (r Reservation) Active() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}
