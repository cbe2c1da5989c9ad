package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Auth tables
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name shown after login
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ============================================================
// Room reference data
// ============================================================

// SlotList stores a room's slot labels as a JSON column
type SlotList []string

func (s SlotList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported slot list column type %T", value)
	}
}

// Room represents study_rooms table (pre-seeded, read-only at runtime)
type Room struct {
	ID             uint     `gorm:"primaryKey" json:"-"`
	Floor          string   `gorm:"uniqueIndex:idx_floor_room;size:10;not null" json:"floor"`
	Name           string   `gorm:"column:room;uniqueIndex:idx_floor_room;size:20;not null" json:"room"`
	AvailableSlots SlotList `gorm:"type:json" json:"available_slots"`
}

func (Room) TableName() string {
	return "study_rooms"
}

// ============================================================
// Bookings
// ============================================================

// Booking represents bookings table. Room/floor are stored by value with
// no referential check against study_rooms or users.
type Booking struct {
	ID          string    `gorm:"primaryKey;size:36" json:"_id"`
	UserName    string    `gorm:"index:idx_user_date;size:50" json:"userName"`
	FullName    string    `gorm:"size:120" json:"fullName,omitempty"`
	Room        string    `gorm:"size:20" json:"room"`
	Floor       string    `gorm:"size:10" json:"floor"`
	BookingDate string    `gorm:"index:idx_user_date;size:10" json:"bookingDate"`
	BookingTime string    `gorm:"size:10" json:"bookingTime"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns the opaque booking id
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate creates/updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Room{},
		&Booking{},
	)
}
