package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/middleware"
	"reservas-backend/services"
	"reservas-backend/utils"
)

type AuthController struct {
	Admins *services.AdminService
}

func NewAuthController(admins *services.AdminService) *AuthController {
	return &AuthController{Admins: admins}
}

type loginPayload struct {
	AdminID string `json:"admin_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

// Login handles POST /api/auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, admin, err := ctl.Admins.Authenticate(c.Request.Context(), payload.AdminID, payload.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"admin_id":  admin.AdminID,
			"full_name": admin.FullName,
			"email":     admin.Email,
		},
	})
}

// Logout handles POST /api/auth/logout. Clears the session unconditionally.
func (ctl *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	if err := ctl.Admins.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me handles GET /api/auth/me.
func (ctl *AuthController) Me(c *gin.Context) {
	admin, err := ctl.Admins.GetByAdminID(c.GetString(middleware.ContextAdminID))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

// DeleteSelf handles DELETE /api/auth/me: removes the logged-in admin and
// ends the session.
func (ctl *AuthController) DeleteSelf(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	adminID := c.GetString(middleware.ContextAdminID)
	if err := ctl.Admins.DeleteSelf(c.Request.Context(), token, adminID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
