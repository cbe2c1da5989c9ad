package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func newRoomApp() (*fiber.App, *memBookingRepo) {
	roomRepo := &memRoomRepo{
		rooms: []*models.Room{
			{Floor: "2", Name: "201", AvailableSlots: models.SlotList{"08:00", "08:30", "09:00"}},
			{Floor: "2", Name: "202", AvailableSlots: models.SlotList{"08:00", "08:30", "09:00"}},
		},
	}
	bookingRepo := &memBookingRepo{}
	handler := NewRoomHandler(services.NewRoomService(roomRepo, bookingRepo))

	app := fiber.New()
	app.Get("/rooms", handler.AvailableRooms)
	return app, bookingRepo
}

func getRooms(t *testing.T, app *fiber.App, query string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/rooms"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, body
}

func TestRooms_ReservedFloorAlwaysEmpty(t *testing.T) {
	app, bookingRepo := newRoomApp()

	bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
		ID: "7f2a0000-0000-0000-0000-000000000099", UserName: "ann",
		Room: "101", Floor: "1", BookingDate: "2026-09-01", BookingTime: "09:00",
	})

	for _, query := range []string{"?floor=1", "?floor=1&time=09:00&date=2026-09-01"} {
		resp, body := getRooms(t, app, query)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("query %q: expected 200, got %d", query, resp.StatusCode)
		}
		rooms, ok := body["rooms"].([]interface{})
		if !ok {
			t.Fatalf("query %q: expected a rooms array, got %v", query, body)
		}
		if len(rooms) != 0 {
			t.Errorf("query %q: expected empty rooms, got %d", query, len(rooms))
		}
	}
}

func TestRooms_MissingParams(t *testing.T) {
	app, _ := newRoomApp()

	resp, body := getRooms(t, app, "?floor=2&time=09:00")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Missing floor, time, or date!" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestRooms_AnnotatesRemainingSlots(t *testing.T) {
	app, bookingRepo := newRoomApp()

	bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
		ID: "7f2a0000-0000-0000-0000-000000000001", UserName: "ann",
		Room: "201", Floor: "2", BookingDate: "2026-09-01", BookingTime: "08:00",
	})

	resp, body := getRooms(t, app, "?floor=2&time=09:00&date=2026-09-01")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	rooms := body["rooms"].([]interface{})
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}

	for _, raw := range rooms {
		room := raw.(map[string]interface{})
		slots := room["available_slots"].([]interface{})
		if room["room"] == "201" && len(slots) != 2 {
			t.Errorf("room 201: expected 2 remaining slots, got %d", len(slots))
		}
		if room["room"] == "202" && len(slots) != 3 {
			t.Errorf("room 202: expected 3 remaining slots, got %d", len(slots))
		}
	}
}
