package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reservas-backend/models"
)

// RoomService covers the admin-gated room inventory operations.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	Type     string  `json:"type"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

func (in *RoomInput) validate() error {
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalidRoomInput)
	}
	if in.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be a positive integer", ErrInvalidRoomInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidRoomInput)
	}
	if in.Status == "" {
		in.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(in.Status) {
		return ErrInvalidRoomStatus
	}
	return nil
}

// Create generates the room code once; it is immutable afterwards.
func (s *RoomService) Create(input RoomInput) (models.Room, error) {
	if err := input.validate(); err != nil {
		return models.Room{}, err
	}
	room := models.Room{
		RoomCode: uuid.NewString(),
		Type:     input.Type,
		Capacity: input.Capacity,
		Price:    input.Price,
		Status:   input.Status,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_code").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByCode(roomCode string) (models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_code = ?", roomCode).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

// Update edits type, capacity, price and status. The room code is never
// touched.
func (s *RoomService) Update(roomCode string, input RoomInput) (models.Room, error) {
	if err := input.validate(); err != nil {
		return models.Room{}, err
	}

	room, err := s.GetByCode(roomCode)
	if err != nil {
		return models.Room{}, err
	}

	room.Type = input.Type
	room.Capacity = input.Capacity
	room.Price = input.Price
	room.Status = input.Status
	if err := s.DB.Save(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// Delete removes a room. Blocked while any reservation still references it,
// soft-deleted or not, so history stays intact.
func (s *RoomService) Delete(roomCode string) error {
	room, err := s.GetByCode(roomCode)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Unscoped().Model(&models.Reservation{}).
		Where("room_id = ?", room.ID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count reservations: %w", err)
	}
	if count > 0 {
		return ErrRoomInUse
	}

	return s.DB.Delete(&room).Error
}
