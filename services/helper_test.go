package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reservas-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.Customer{},
		&models.Room{},
		&models.Reservation{},
		&models.Payment{},
	))
	return db
}

func createRoom(t *testing.T, db *gorm.DB, price float64, status string) models.Room {
	t.Helper()
	room := models.Room{
		RoomCode: uuid.NewString(),
		Type:     "Double",
		Capacity: 2,
		Price:    price,
		Status:   status,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
