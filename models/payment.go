package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCash     = "cash"
)

// Payment records a simulated deposit payment. Rows are immutable once
// created; there is no update path.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	PublicID      string `gorm:"column:public_id;uniqueIndex;size:36" json:"id"`
	ReservationID uint   `gorm:"index;column:reservation_id" json:"-"`

	Amount    float64 `json:"amount"`
	Method    string  `gorm:"size:20" json:"method"`
	Reference string  `gorm:"size:120" json:"reference,omitempty"`

	// GatewayPayload keeps the snapshot the simulated gateway would have
	// returned, so the record looks like a real capture.
	GatewayPayload datatypes.JSON `gorm:"column:gateway_payload" json:"gatewayPayload,omitempty"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"-"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCash:
		return true
	}
	return false
}
