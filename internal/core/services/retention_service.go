package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studyspace-booking/internal/adapters/persistence/repositories"
)

// RetentionService purges long-past bookings on a daily schedule
type RetentionService struct {
	bookingRepo   repositories.BookingRepository
	retentionDays int
	cron          *cron.Cron
}

// NewRetentionService creates a new retention service
func NewRetentionService(bookingRepo repositories.BookingRepository, retentionDays int) *RetentionService {
	return &RetentionService{
		bookingRepo:   bookingRepo,
		retentionDays: retentionDays,
	}
}

// Start schedules the nightly purge (03:30 daily)
func (s *RetentionService) Start() {
	s.cron = cron.New()
	s.cron.AddFunc("30 3 * * *", s.purgeExpiredBookings)
	s.cron.Start()
	log.Printf("🚀 RetentionService started (keeping %d days of past bookings)", s.retentionDays)
}

// Stop stops the scheduler
func (s *RetentionService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Println("🛑 RetentionService stopped")
}

func (s *RetentionService) purgeExpiredBookings() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays).Format("2006-01-02")

	deleted, err := s.bookingRepo.DeleteDatedBefore(context.Background(), cutoff)
	if err != nil {
		log.Printf("❌ Booking retention purge error: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("✅ Purged %d bookings dated before %s", deleted, cutoff)
	}
}
