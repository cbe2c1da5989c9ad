package repositories

import (
	"context"

	"studyspace-booking/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bookingRepository implements BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a booking record
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// List returns every booking record
func (r *bookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := r.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByUserName returns all bookings held by a user
func (r *bookingRepository) ListByUserName(ctx context.Context, userName string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetByID gets a booking by its id
func (r *bookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete removes a booking by id
func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

// CountForUserOnDate counts a user's bookings for one calendar date
func (r *bookingRepository) CountForUserOnDate(ctx context.Context, userName, bookingDate string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("user_name = ? AND booking_date = ?", userName, bookingDate).
		Count(&count).Error
	return count, err
}

// BookedTimes lists the slot labels already booked for (room, floor, date)
func (r *bookingRepository) BookedTimes(ctx context.Context, room, floor, bookingDate string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room = ? AND floor = ? AND booking_date = ?", room, floor, bookingDate).
		Pluck("booking_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// DeleteDatedBefore removes bookings dated strictly before the given date.
// Dates are YYYY-MM-DD strings so the string comparison orders correctly.
func (r *bookingRepository) DeleteDatedBefore(ctx context.Context, bookingDate string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("booking_date < ?", bookingDate).
		Delete(&models.Booking{})
	return result.RowsAffected, result.Error
}
