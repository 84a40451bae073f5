package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/utils"
)

// respondError maps service sentinels to HTTP statuses. Anything unmapped is
// a 500 with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidRUTFormat),
		errors.Is(err, utils.ErrInvalidRUTChecksum),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidRoomStatus),
		errors.Is(err, services.ErrInvalidRoomInput),
		errors.Is(err, services.ErrInvalidSettings):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrAlreadyProcessed),
		errors.Is(err, services.ErrRoomInUse):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
