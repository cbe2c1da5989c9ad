package repositories

import (
	"context"

	"studyspace-booking/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsernameOrEmail(ctx context.Context, identity string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// RoomRepository defines room repository interface
// Read-only access to the pre-seeded study_rooms table
type RoomRepository interface {
	ListByFloor(ctx context.Context, floor string) ([]*models.Room, error)
}

// BookingRepository defines booking repository interface
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context) ([]*models.Booking, error)
	ListByUserName(ctx context.Context, userName string) ([]*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	CountForUserOnDate(ctx context.Context, userName, bookingDate string) (int64, error)
	BookedTimes(ctx context.Context, room, floor, bookingDate string) ([]string, error)
	DeleteDatedBefore(ctx context.Context, bookingDate string) (int64, error)
}
