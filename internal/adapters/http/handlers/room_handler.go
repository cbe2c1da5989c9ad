package handlers

import (
	"errors"

	"studyspace-booking/internal/core/domain"
	"studyspace-booking/internal/core/services"
	"studyspace-booking/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoomHandler handles room availability queries
type RoomHandler struct {
	roomService *services.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// AvailableRooms handles the availability query
// @Summary List available rooms
// @Description Rooms on a floor whose requested slot is free on the date, annotated with remaining free slots
// @Tags Rooms
// @Produce json
// @Param floor query string true "Floor"
// @Param time query string true "Slot label (e.g. 09:30)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /rooms [get]
func (h *RoomHandler) AvailableRooms(c *fiber.Ctx) error {
	floor := c.Query("floor")
	timeSlot := c.Query("time")
	date := c.Query("date")

	rooms, err := h.roomService.AvailableRooms(c.Context(), floor, date, timeSlot)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSearchParams) {
			return response.BadRequest(c, "Missing floor, time, or date!")
		}
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"rooms": rooms,
	})
}
