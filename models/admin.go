package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AdminID  string `gorm:"column:admin_id;uniqueIndex;size:64" json:"admin_id"`
	FullName string `gorm:"size:150" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`

	// Legacy column kept for schema parity with earlier deployments. The
	// session store is authoritative; this field is never read back.
	SessionToken *string `gorm:"size:64" json:"-"`
}
