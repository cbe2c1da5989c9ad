package repositories

import (
	"context"

	"studyspace-booking/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roomRepository implements RoomRepository interface
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// ListByFloor lists the rooms configured for a floor with their default slots
func (r *roomRepository) ListByFloor(ctx context.Context, floor string) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).
		Where("floor = ?", floor).
		Order("room").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
