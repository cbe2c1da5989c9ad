package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studyspace-booking/internal/adapters/persistence/models"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(ctx context.Context, identity string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == identity || u.Email == identity {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeRoomRepo struct {
	rooms []*models.Room
}

func (f *fakeRoomRepo) ListByFloor(ctx context.Context, floor string) ([]*models.Room, error) {
	var result []*models.Room
	for _, r := range f.rooms {
		if r.Floor == floor {
			copied := *r
			copied.AvailableSlots = append(models.SlotList{}, r.AvailableSlots...)
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*models.Booking
	nextID   int
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		f.nextID++
		booking.ID = fmt.Sprintf("3b1c0000-0000-0000-0000-%012d", f.nextID)
	}
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*models.Booking, error) {
	return append([]*models.Booking{}, f.bookings...), nil
}

func (f *fakeBookingRepo) ListByUserName(ctx context.Context, userName string) ([]*models.Booking, error) {
	var result []*models.Booking
	for _, b := range f.bookings {
		if b.UserName == userName {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBookingRepo) CountForUserOnDate(ctx context.Context, userName, bookingDate string) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.UserName == userName && b.BookingDate == bookingDate {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) BookedTimes(ctx context.Context, room, floor, bookingDate string) ([]string, error) {
	var times []string
	for _, b := range f.bookings {
		if b.Room == room && b.Floor == floor && b.BookingDate == bookingDate {
			times = append(times, b.BookingTime)
		}
	}
	return times, nil
}

func (f *fakeBookingRepo) DeleteDatedBefore(ctx context.Context, bookingDate string) (int64, error) {
	var kept []*models.Booking
	var deleted int64
	for _, b := range f.bookings {
		if b.BookingDate < bookingDate {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	f.bookings = kept
	return deleted, nil
}
