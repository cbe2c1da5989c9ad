package handlers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studyspace-booking/internal/adapters/persistence/models"
)

// Minimal in-memory repositories backing the handler tests.

type memUserRepo struct {
	users []*models.User
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *memUserRepo) GetByUsernameOrEmail(ctx context.Context, identity string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == identity || u.Email == identity {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memRoomRepo struct {
	rooms []*models.Room
}

func (m *memRoomRepo) ListByFloor(ctx context.Context, floor string) ([]*models.Room, error) {
	var result []*models.Room
	for _, r := range m.rooms {
		if r.Floor == floor {
			copied := *r
			copied.AvailableSlots = append(models.SlotList{}, r.AvailableSlots...)
			result = append(result, &copied)
		}
	}
	return result, nil
}

type memBookingRepo struct {
	bookings []*models.Booking
	nextID   int
}

func (m *memBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		m.nextID++
		booking.ID = fmt.Sprintf("7f2a0000-0000-0000-0000-%012d", m.nextID)
	}
	copied := *booking
	m.bookings = append(m.bookings, &copied)
	return nil
}

func (m *memBookingRepo) List(ctx context.Context) ([]*models.Booking, error) {
	return append([]*models.Booking{}, m.bookings...), nil
}

func (m *memBookingRepo) ListByUserName(ctx context.Context, userName string) ([]*models.Booking, error) {
	var result []*models.Booking
	for _, b := range m.bookings {
		if b.UserName == userName {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memBookingRepo) Delete(ctx context.Context, id string) error {
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memBookingRepo) CountForUserOnDate(ctx context.Context, userName, bookingDate string) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.UserName == userName && b.BookingDate == bookingDate {
			count++
		}
	}
	return count, nil
}

func (m *memBookingRepo) BookedTimes(ctx context.Context, room, floor, bookingDate string) ([]string, error) {
	var times []string
	for _, b := range m.bookings {
		if b.Room == room && b.Floor == floor && b.BookingDate == bookingDate {
			times = append(times, b.BookingTime)
		}
	}
	return times, nil
}

func (m *memBookingRepo) DeleteDatedBefore(ctx context.Context, bookingDate string) (int64, error) {
	var kept []*models.Booking
	var deleted int64
	for _, b := range m.bookings {
		if b.BookingDate < bookingDate {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	m.bookings = kept
	return deleted, nil
}
