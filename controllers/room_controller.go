package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/utils"
)

type RoomController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Rooms: rooms, Availability: availability}
}

// AvailableRooms handles GET /api/rooms/available?start=&end= (public).
func (ctl *RoomController) AvailableRooms(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}

	rooms, err := ctl.Availability.AvailableRooms(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRooms handles GET /api/rooms (admin).
func (ctl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctl.Rooms.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms (admin).
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctl.Rooms.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PATCH/PUT /api/rooms/:roomCode (admin).
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctl.Rooms.Update(c.Param("roomCode"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:roomCode (admin).
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	if err := ctl.Rooms.Delete(c.Param("roomCode")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
