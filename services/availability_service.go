package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"reservas-backend/models"
)

// AvailabilityService answers "which rooms are free for this date range".
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailableRooms returns rooms whose status is "available" and which have no
// pending or confirmed reservation overlapping [start, end). Date ranges are
// half-open: a reservation ending on the day another starts does not
// overlap. Results are ordered by room code.
func (s *AvailabilityService) AvailableRooms(start, end time.Time) ([]models.Room, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	var rooms []models.Room
	err := s.DB.
		Where("status = ?", models.RoomStatusAvailable).
		Where("id NOT IN (?)", s.overlappingRoomIDs(s.DB, start, end)).
		Order("room_code").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomAvailable reports whether one specific room is free for [start, end).
// The room's own status must be "available" as well.
func (s *AvailabilityService) RoomAvailable(tx *gorm.DB, roomID uint, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, ErrInvalidDateRange
	}
	if tx == nil {
		tx = s.DB
	}

	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if room.Status != models.RoomStatusAvailable {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", models.ActiveReservationStatuses).
		Where("start_date < ? AND ? < end_date", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// overlappingRoomIDs is the subquery of room ids blocked by an active
// reservation overlapping [start, end).
func (s *AvailabilityService) overlappingRoomIDs(tx *gorm.DB, start, end time.Time) *gorm.DB {
	return tx.Model(&models.Reservation{}).
		Select("room_id").
		Where("status IN ?", models.ActiveReservationStatuses).
		Where("start_date < ? AND ? < end_date", end, start)
}
