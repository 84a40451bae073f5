package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GetHotelSettings handles GET /api/settings/hotel (admin).
func (ctl *SettingsController) GetHotelSettings(c *gin.Context) {
	setting, err := ctl.Settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// UpdateHotelSettings handles PUT /api/settings/hotel (admin).
func (ctl *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	setting, err := ctl.Settings.Update(input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
