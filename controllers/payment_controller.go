package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservas-backend/queue"
	"reservas-backend/services"
	"reservas-backend/utils"
)

type PaymentController struct {
	Payments  *services.PaymentService
	Publisher *queue.Publisher
}

func NewPaymentController(payments *services.PaymentService, publisher *queue.Publisher) *PaymentController {
	return &PaymentController{Payments: payments, Publisher: publisher}
}

type simulatePaymentPayload struct {
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
}

// SimulatePayment handles POST /api/payments/:code. The amount is always the
// reservation's deposit; the client cannot choose it.
func (ctl *PaymentController) SimulatePayment(c *gin.Context) {
	code := c.Param("code")

	var payload simulatePaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	payment, err := ctl.Payments.RecordSimulated(code, payload.Method, payload.Reference)
	if err != nil {
		respondError(c, err)
		return
	}

	reservation := payment.Reservation
	ctl.Publisher.ReservationConfirmed(queue.ReservationConfirmedEvent{
		Code:          reservation.Code,
		RoomType:      reservation.Room.Type,
		CustomerName:  reservation.Customer.FullName,
		CustomerEmail: reservation.Customer.Email,
		Amount:        payment.Amount,
		Method:        payment.Method,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"id":                payment.PublicID,
		"reservationCode":   reservation.Code,
		"reservationStatus": reservation.Status,
		"amount":            payment.Amount,
		"method":            payment.Method,
		"reference":         payment.Reference,
		"createdAt":         payment.CreatedAt.UTC().Format(time.RFC3339),
	})
}
