package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc    *services.RoomService
	BookingSvc *services.BookingService
}

func NewRoomController(roomSvc *services.RoomService, bookingSvc *services.BookingService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, BookingSvc: bookingSvc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}

// GetRooms (GET /api/rooms?type=&available=)
func (rc *RoomController) GetRooms(c *gin.Context) {
	filters := services.RoomFilters{Type: c.Query("type")}
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid available filter.")
			return
		}
		filters.Available = &v
	}

	rooms, err := rc.RoomSvc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Rooms retrieved.", rooms)
}

// GetRoomByID (GET /api/rooms/:id)
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := rc.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room retrieved.", room)
}

// CreateRoom (POST /api/rooms)
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	room, err := rc.RoomSvc.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Room created.", room)
}

// UpdateRoom (PUT /api/rooms/:id)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	room, err := rc.RoomSvc.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room updated.", room)
}

// DeleteRoom (DELETE /api/rooms/:id)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room deleted.", nil)
}

// CheckAvailability (GET /api/rooms/:id/availability?checkIn&checkOut&excludeBooking)
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a YYYY-MM-DD date.")
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a YYYY-MM-DD date.")
		return
	}

	var excludeID uint
	if raw := c.Query("excludeBooking"); raw != "" {
		parsed, pErr := strconv.ParseUint(raw, 10, 32)
		if pErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid excludeBooking parameter.")
			return
		}
		excludeID = uint(parsed)
	}

	available, err := rc.BookingSvc.IsRoomAvailable(id, checkIn, checkOut, excludeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Availability checked.", gin.H{
		"roomId":    id,
		"checkIn":   checkIn.Format("2006-01-02"),
		"checkOut":  checkOut.Format("2006-01-02"),
		"available": available,
	})
}
