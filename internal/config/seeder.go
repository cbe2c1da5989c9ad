package config

import (
	"log"

	"studyspace-booking/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// defaultSlots is the canonical half-hour slot list every seeded room
// starts with (08:00 through 17:00).
var defaultSlots = models.SlotList{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00",
}

// SeedRooms seeds the study-room reference data. Floor 1 is reserved and
// gets no rooms. Existing rooms are left untouched, so reseeding is safe.
func SeedRooms(db *gorm.DB) error {
	rooms := []models.Room{
		{Floor: "2", Name: "201", AvailableSlots: defaultSlots},
		{Floor: "2", Name: "202", AvailableSlots: defaultSlots},
		{Floor: "2", Name: "203", AvailableSlots: defaultSlots},
		{Floor: "2", Name: "204", AvailableSlots: defaultSlots},
		{Floor: "3", Name: "301", AvailableSlots: defaultSlots},
		{Floor: "3", Name: "302", AvailableSlots: defaultSlots},
		{Floor: "3", Name: "303", AvailableSlots: defaultSlots},
		{Floor: "4", Name: "401", AvailableSlots: defaultSlots},
		{Floor: "4", Name: "402", AvailableSlots: defaultSlots},
	}

	for _, room := range rooms {
		var existing models.Room
		err := db.Where("floor = ? AND room = ?", room.Floor, room.Name).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&room).Error; err != nil {
					return err
				}
				log.Printf("   Created room: floor %s room %s", room.Floor, room.Name)
			}
		}
	}

	log.Println("✅ Room reference data seeded successfully")
	return nil
}
