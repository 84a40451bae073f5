package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reservas-backend/controllers"
	"reservas-backend/middleware"
	"reservas-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine. Management routes sit
// behind the admin session guard; booking, lookup and payment are public.
func SetupRouter(
	rc *controllers.ReservationController,
	pc *controllers.PaymentController,
	roomCtl *controllers.RoomController,
	ac *controllers.AuthController,
	sc *controllers.SettingsController,
	admins *services.AdminService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAdmin := middleware.RequireAdmin(admins)

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("/available", roomCtl.AvailableRooms)

			rooms.GET("", requireAdmin, roomCtl.GetRooms)
			rooms.POST("", requireAdmin, roomCtl.CreateRoom)
			rooms.PATCH("/:roomCode", requireAdmin, roomCtl.UpdateRoom)
			rooms.PUT("/:roomCode", requireAdmin, roomCtl.UpdateRoom)
			rooms.DELETE("/:roomCode", requireAdmin, roomCtl.DeleteRoom)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/lookup", rc.LookupReservation)

			reservations.GET("", requireAdmin, rc.ListReservations)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/:code", pc.SimulatePayment)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/logout", requireAdmin, ac.Logout)
			auth.GET("/me", requireAdmin, ac.Me)
			auth.DELETE("/me", requireAdmin, ac.DeleteSelf)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", requireAdmin, sc.GetHotelSettings)
			settings.PUT("/hotel", requireAdmin, sc.UpdateHotelSettings)
		}
	}

	return r
}
