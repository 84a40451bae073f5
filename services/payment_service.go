package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reservas-backend/models"
)

// PaymentService records simulated deposit payments and confirms
// reservations. No gateway is contacted; the "capture" is fabricated and
// stored alongside the payment.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// RecordSimulated creates a payment for the reservation's deposit amount and
// flips the reservation to confirmed. Both writes happen in one transaction:
// either both are visible or neither. The reservation must be pending.
func (s *PaymentService) RecordSimulated(code, method, reference string) (models.Payment, error) {
	if !models.ValidPaymentMethod(method) {
		return models.Payment{}, ErrInvalidPaymentMethod
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Customer").
			Preload("Room").
			Where("code = ?", code).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}

		if reservation.Status != models.ReservationStatusPending {
			return ErrAlreadyProcessed
		}

		amount := reservation.DepositAmount()
		snapshot, err := json.Marshal(map[string]interface{}{
			"simulated":     true,
			"authorization": uuid.NewString(),
			"captured_at":   time.Now().UTC().Format(time.RFC3339),
			"method":        method,
		})
		if err != nil {
			return fmt.Errorf("failed to build gateway snapshot: %w", err)
		}

		payment = models.Payment{
			PublicID:       uuid.NewString(),
			ReservationID:  reservation.ID,
			Amount:         amount,
			Method:         method,
			Reference:      reference,
			GatewayPayload: datatypes.JSON(snapshot),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", reservation.ID).
			Update("status", models.ReservationStatusConfirmed).Error; err != nil {
			return fmt.Errorf("failed to confirm reservation: %w", err)
		}

		reservation.Status = models.ReservationStatusConfirmed
		payment.Reservation = reservation
		return nil
	})
	if err != nil {
		return models.Payment{}, err
	}

	log.WithFields(log.Fields{
		"code":   code,
		"amount": payment.Amount,
		"method": method,
	}).Info("simulated payment recorded")
	return payment, nil
}
