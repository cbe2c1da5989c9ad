package services

import (
	"context"

	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/adapters/persistence/repositories"
	"studyspace-booking/internal/core/domain"
)

// ReservedFloor always yields an empty room list instead of an error
const ReservedFloor = "1"

// RoomService computes room availability from the catalog and the ledger
type RoomService struct {
	roomRepo    repositories.RoomRepository
	bookingRepo repositories.BookingRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repositories.RoomRepository, bookingRepo repositories.BookingRepository) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// AvailableRooms returns the rooms on a floor whose requested slot is still
// free on the given date. Each returned room carries its remaining free
// slots (default slots minus booked slots, default order preserved).
// Read-only: repeated calls with unchanged bookings return the same result.
//
// The reserved-floor short circuit runs before parameter validation, so
// floor "1" answers with an empty list even when time or date is missing.
func (s *RoomService) AvailableRooms(ctx context.Context, floor, date, timeSlot string) ([]*models.Room, error) {
	if floor == ReservedFloor {
		return []*models.Room{}, nil
	}
	if floor == "" || date == "" || timeSlot == "" {
		return nil, domain.ErrMissingSearchParams
	}

	rooms, err := s.roomRepo.ListByFloor(ctx, floor)
	if err != nil {
		return nil, err
	}

	available := make([]*models.Room, 0, len(rooms))
	for _, room := range rooms {
		bookedTimes, err := s.bookingRepo.BookedTimes(ctx, room.Name, floor, date)
		if err != nil {
			return nil, err
		}

		booked := make(map[string]struct{}, len(bookedTimes))
		for _, t := range bookedTimes {
			booked[t] = struct{}{}
		}

		requestedFree := false
		free := make(models.SlotList, 0, len(room.AvailableSlots))
		for _, slot := range room.AvailableSlots {
			if _, taken := booked[slot]; !taken {
				free = append(free, slot)
				if slot == timeSlot {
					requestedFree = true
				}
			}
		}
		room.AvailableSlots = free

		if requestedFree {
			available = append(available, room)
		}
	}

	return available, nil
}
