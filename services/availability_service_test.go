package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reservas-backend/models"
)

func reserve(t *testing.T, svc *ReservationService, room models.Room, rut, start, end string) models.Reservation {
	t.Helper()
	reservation, err := svc.Create(CreateReservationInput{
		RUT:       rut,
		FullName:  "Ana Soto",
		Email:     "ana@example.com",
		Phone:     "+56911111111",
		RoomCode:  room.RoomCode,
		StartDate: date(start),
		EndDate:   date(end),
	})
	require.NoError(t, err)
	return reservation
}

func newServices(db *gorm.DB) (*AvailabilityService, *ReservationService) {
	availability := NewAvailabilityService(db)
	return availability, NewReservationService(db, availability, NewSettingsService(db))
}

func TestAvailableRoomsInvalidRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	_, err := svc.AvailableRooms(date("2025-01-10"), date("2025-01-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.AvailableRooms(date("2025-01-10"), date("2025-01-05"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestAvailableRoomsExcludesOverlapping(t *testing.T) {
	db := newTestDB(t)
	availability, reservations := newServices(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	other := createRoom(t, db, 80000, models.RoomStatusAvailable)
	reserve(t, reservations, room, "12345678-5", "2025-01-05", "2025-01-15")

	// Overlapping query: only the untouched room remains.
	rooms, err := availability.AvailableRooms(date("2025-01-01"), date("2025-01-10"))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, other.RoomCode, rooms[0].RoomCode)

	// Disjoint range after checkout: both rooms are free again.
	rooms, err = availability.AvailableRooms(date("2025-01-15"), date("2025-01-20"))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestAvailableRoomsHalfOpenBoundary(t *testing.T) {
	db := newTestDB(t)
	availability, reservations := newServices(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reserve(t, reservations, room, "12345678-5", "2025-01-05", "2025-01-15")

	// Ending exactly when the existing reservation starts is not an overlap.
	rooms, err := availability.AvailableRooms(date("2025-01-01"), date("2025-01-05"))
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// A single shared day does overlap.
	rooms, err = availability.AvailableRooms(date("2025-01-14"), date("2025-01-16"))
	require.NoError(t, err)
	assert.Len(t, rooms, 0)
}

func TestCancelledReservationsDoNotBlock(t *testing.T) {
	db := newTestDB(t)
	availability, reservations := newServices(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reservation := reserve(t, reservations, room, "12345678-5", "2025-01-05", "2025-01-15")

	require.NoError(t, db.Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", models.ReservationStatusCancelled).Error)

	rooms, err := availability.AvailableRooms(date("2025-01-05"), date("2025-01-10"))
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestNonAvailableRoomStatusExcluded(t *testing.T) {
	db := newTestDB(t)
	availability := NewAvailabilityService(db)

	createRoom(t, db, 100000, models.RoomStatusMaintenance)
	createRoom(t, db, 100000, models.RoomStatusOccupied)
	free := createRoom(t, db, 100000, models.RoomStatusAvailable)

	rooms, err := availability.AvailableRooms(date("2025-01-01"), date("2025-01-02"))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, free.RoomCode, rooms[0].RoomCode)
}

func TestRoomAvailablePointCheck(t *testing.T) {
	db := newTestDB(t)
	availability, reservations := newServices(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reserve(t, reservations, room, "12345678-5", "2025-01-05", "2025-01-15")

	free, err := availability.RoomAvailable(nil, room.ID, date("2025-01-10"), date("2025-01-12"))
	require.NoError(t, err)
	assert.False(t, free)

	free, err = availability.RoomAvailable(nil, room.ID, date("2025-01-15"), date("2025-01-20"))
	require.NoError(t, err)
	assert.True(t, free)

	_, err = availability.RoomAvailable(nil, 9999, date("2025-01-01"), date("2025-01-02"))
	assert.ErrorIs(t, err, ErrNotFound)
}
