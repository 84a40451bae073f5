package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservas-backend/models"
	"reservas-backend/queue"
	"reservas-backend/services"
	"reservas-backend/utils"
)

const dateLayout = "2006-01-02"

type ReservationController struct {
	Reservations *services.ReservationService
	Publisher    *queue.Publisher
}

func NewReservationController(reservations *services.ReservationService, publisher *queue.Publisher) *ReservationController {
	return &ReservationController{Reservations: reservations, Publisher: publisher}
}

type createReservationPayload struct {
	RUT       string `json:"rut" binding:"required"`
	FullName  string `json:"fullName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	RoomCode  string `json:"roomCode" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// CreateReservation handles POST /api/reservations.
func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	start, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return
	}

	reservation, err := ctl.Reservations.Create(services.CreateReservationInput{
		RUT:       payload.RUT,
		FullName:  payload.FullName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		RoomCode:  payload.RoomCode,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.Publisher.ReservationCreated(queue.ReservationCreatedEvent{
		Code:           reservation.Code,
		RoomCode:       reservation.Room.RoomCode,
		RoomType:       reservation.Room.Type,
		CustomerRUT:    reservation.Customer.RUT,
		StartDate:      reservation.StartDate.Format(dateLayout),
		EndDate:        reservation.EndDate.Format(dateLayout),
		TotalPrice:     reservation.TotalPrice,
		DepositPercent: reservation.DepositPercent,
		CreatedAt:      reservation.CreatedAt.UTC().Format(time.RFC3339),
	})

	utils.JSONSuccess(c, http.StatusCreated, reservationView(reservation))
}

// LookupReservation handles GET /api/reservations/lookup?rut=&code=. Both
// parameters are required; the pair is the lookup key.
func (ctl *ReservationController) LookupReservation(c *gin.Context) {
	rut := c.Query("rut")
	code := c.Query("code")
	if rut == "" || code == "" {
		utils.JSONError(c, http.StatusBadRequest, "rut and code are required")
		return
	}

	reservation, err := ctl.Reservations.Lookup(rut, code)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationView(reservation))
}

// ListReservations handles GET /api/reservations (admin).
func (ctl *ReservationController) ListReservations(c *gin.Context) {
	reservations, err := ctl.Reservations.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]gin.H, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, reservationView(r))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

func reservationView(r models.Reservation) gin.H {
	return gin.H{
		"id":             r.PublicID,
		"code":           r.Code,
		"status":         r.Status,
		"startDate":      r.StartDate.Format(dateLayout),
		"endDate":        r.EndDate.Format(dateLayout),
		"totalPrice":     r.TotalPrice,
		"depositPercent": r.DepositPercent,
		"depositAmount":  r.DepositAmount(),
		"roomCode":       r.Room.RoomCode,
		"roomType":       r.Room.Type,
		"customerRut":    r.Customer.RUT,
		"customerName":   r.Customer.FullName,
		"createdAt":      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
