package handlers

import (
	"errors"

	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/core/domain"
	"studyspace-booking/internal/core/services"
	"studyspace-booking/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles booking ledger endpoints
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents booking creation request body
type CreateBookingRequest struct {
	UserName    string `json:"userName"`
	FullName    string `json:"fullName"`
	Room        string `json:"room"`
	Floor       string `json:"floor"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

// List handles listing every booking
// @Summary List all bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
	})
}

// Create handles booking creation
// @Summary Create a booking
// @Description Insert a booking, subject to the daily per-user limit
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBookingRequest true "Booking fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	booking := &models.Booking{
		UserName:    req.UserName,
		FullName:    req.FullName,
		Room:        req.Room,
		Floor:       req.Floor,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
	}

	bookingID, err := h.bookingService.Create(c.Context(), booking)
	if err != nil {
		if errors.Is(err, domain.ErrDailyQuotaExceeded) {
			return response.BadRequest(c, "Daily booking limit reached (4).")
		}
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":    "Booking added and room updated successfully!",
		"booking_id": bookingID,
	})
}

// ListForUser handles a user's booking history
// @Summary List a user's bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param userName query string true "Username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /user_bookings [get]
func (h *BookingHandler) ListForUser(c *fiber.Ctx) error {
	userName := c.Query("userName")

	bookings, err := h.bookingService.ListForUser(c.Context(), userName)
	if err != nil {
		if errors.Is(err, domain.ErrMissingUserName) {
			return response.BadRequest(c, "Missing userName!")
		}
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
	})
}

// Delete handles booking deletion by id
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.bookingService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return response.NotFound(c, "Booking not found!")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Message(c, fiber.StatusOK, "Booking deleted!")
}
