package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reservas-backend/models"
	"reservas-backend/utils"
)

// ReservationService orchestrates customer upsert, availability check and
// reservation creation.
type ReservationService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Settings     *SettingsService
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService, settings *SettingsService) *ReservationService {
	return &ReservationService{DB: db, Availability: availability, Settings: settings}
}

// CreateReservationInput is the booking request. RoomCode refers to the
// room's public identifier, not the database id.
type CreateReservationInput struct {
	RUT       string
	FullName  string
	Email     string
	Phone     string
	RoomCode  string
	StartDate time.Time
	EndDate   time.Time
}

// Create validates the request and books the room. Customer upsert, the
// availability re-check and the reservation insert run in one transaction
// with the room row locked, so two concurrent bookings for overlapping
// dates cannot both pass the check.
func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	rut, err := utils.NormalizeRUT(input.RUT)
	if err != nil {
		return models.Reservation{}, err
	}
	if !input.StartDate.Before(input.EndDate) {
		return models.Reservation{}, ErrInvalidDateRange
	}

	depositPercent := s.Settings.DefaultDepositPercent()

	var reservation models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room row first: concurrent bookings for the same room
		// serialize here.
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_code = ?", input.RoomCode).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}

		free, err := s.Availability.RoomAvailable(tx, room.ID, input.StartDate, input.EndDate)
		if err != nil {
			return err
		}
		if !free {
			return ErrRoomUnavailable
		}

		// First-write-wins: an existing customer keeps its stored contact
		// details.
		customer := models.Customer{
			RUT:      rut,
			FullName: input.FullName,
			Email:    input.Email,
			Phone:    input.Phone,
		}
		if err := tx.Where(models.Customer{RUT: rut}).FirstOrCreate(&customer).Error; err != nil {
			return fmt.Errorf("failed to upsert customer: %w", err)
		}

		created, err := s.createWithFreshCode(tx, room, customer, input, depositPercent)
		if err != nil {
			return err
		}
		reservation = created
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	log.WithFields(log.Fields{
		"code": reservation.Code,
		"room": input.RoomCode,
		"rut":  rut,
	}).Info("reservation created")
	return reservation, nil
}

// createWithFreshCode inserts the reservation, re-rolling the confirmation
// code on a unique collision.
func (s *ReservationService) createWithFreshCode(tx *gorm.DB, room models.Room, customer models.Customer, input CreateReservationInput, depositPercent int) (models.Reservation, error) {
	const maxRetries = 5

	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		code, err := utils.GenerateReservationCode()
		if err != nil {
			return models.Reservation{}, fmt.Errorf("failed to generate confirmation code: %w", err)
		}

		reservation := models.Reservation{
			PublicID:       uuid.NewString(),
			Code:           code,
			CustomerID:     customer.ID,
			RoomID:         room.ID,
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			Status:         models.ReservationStatusPending,
			TotalPrice:     room.Price,
			DepositPercent: depositPercent,
		}

		createErr = tx.Create(&reservation).Error
		if createErr == nil {
			reservation.Customer = customer
			reservation.Room = room
			return reservation, nil
		}

		lc := strings.ToLower(createErr.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
			log.WithField("attempt", attempt+1).Warn("confirmation code collision, retrying")
			continue
		}
		return models.Reservation{}, fmt.Errorf("failed to create reservation: %w", createErr)
	}
	return models.Reservation{}, fmt.Errorf("failed to create reservation after retries: %w", createErr)
}

// Lookup returns the reservation matching both the confirmation code and the
// owning customer's RUT. Code and RUT are jointly required.
func (s *ReservationService) Lookup(rawRUT, code string) (models.Reservation, error) {
	rut, err := utils.NormalizeRUT(rawRUT)
	if err != nil {
		return models.Reservation{}, err
	}

	var reservation models.Reservation
	err = s.DB.
		Joins("JOIN customers ON customers.id = reservations.customer_id").
		Where("reservations.code = ? AND customers.rut = ?", code, rut).
		Preload("Customer").
		Preload("Room").
		Preload("Payments").
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrNotFound
		}
		return models.Reservation{}, fmt.Errorf("failed to look up reservation: %w", err)
	}
	return reservation, nil
}

// ListAll returns every reservation with customer and room preloaded, newest
// first. Admin use only.
func (s *ReservationService) ListAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Preload("Customer").
		Preload("Room").
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}
