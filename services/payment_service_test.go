package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservas-backend/models"
)

func TestRecordSimulatedPayment(t *testing.T) {
	db := newTestDB(t)
	_, reservations := newServices(db)
	payments := NewPaymentService(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reservation := reserve(t, reservations, room, "12345678-5", "2025-03-01", "2025-03-05")

	payment, err := payments.RecordSimulated(reservation.Code, models.PaymentMethodCard, "visa ****1234")
	require.NoError(t, err)

	// Room priced at 100000 with 30 percent deposit pays exactly 30000.
	assert.Equal(t, 30000.0, payment.Amount)
	assert.Equal(t, models.PaymentMethodCard, payment.Method)
	assert.NotEmpty(t, payment.PublicID)
	assert.NotEmpty(t, payment.GatewayPayload)
	assert.Equal(t, models.ReservationStatusConfirmed, payment.Reservation.Status)

	var stored models.Reservation
	require.NoError(t, db.Where("code = ?", reservation.Code).First(&stored).Error)
	assert.Equal(t, models.ReservationStatusConfirmed, stored.Status)
}

func TestRecordSimulatedPaymentTwice(t *testing.T) {
	db := newTestDB(t)
	_, reservations := newServices(db)
	payments := NewPaymentService(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reservation := reserve(t, reservations, room, "12345678-5", "2025-03-01", "2025-03-05")

	_, err := payments.RecordSimulated(reservation.Code, models.PaymentMethodTransfer, "")
	require.NoError(t, err)

	_, err = payments.RecordSimulated(reservation.Code, models.PaymentMethodTransfer, "")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordSimulatedPaymentUnknownCode(t *testing.T) {
	db := newTestDB(t)
	payments := NewPaymentService(db)

	_, err := payments.RecordSimulated("NOPECODE", models.PaymentMethodCash, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordSimulatedPaymentInvalidMethod(t *testing.T) {
	db := newTestDB(t)
	_, reservations := newServices(db)
	payments := NewPaymentService(db)

	room := createRoom(t, db, 100000, models.RoomStatusAvailable)
	reservation := reserve(t, reservations, room, "12345678-5", "2025-03-01", "2025-03-05")

	_, err := payments.RecordSimulated(reservation.Code, "cheque", "")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	// Nothing was recorded and the reservation stayed pending.
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)

	var stored models.Reservation
	require.NoError(t, db.Where("code = ?", reservation.Code).First(&stored).Error)
	assert.Equal(t, models.ReservationStatusPending, stored.Status)
}
