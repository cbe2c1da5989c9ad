package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/adapters/persistence/repositories"
	"studyspace-booking/internal/core/domain"
)

// DailyBookingLimit is the maximum number of bookings one user may hold
// for one calendar date
const DailyBookingLimit = 4

// BookingService handles the booking ledger
type BookingService struct {
	bookingRepo repositories.BookingRepository

	// creates are serialized per (userName, bookingDate) so the quota
	// count cannot race with a concurrent insert within this process
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repositories.BookingRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		locks:       make(map[string]*sync.Mutex),
	}
}

// ListAll returns every booking record in the ledger
func (s *BookingService) ListAll(ctx context.Context) ([]*models.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// Create inserts a booking after the daily-quota check. Room, floor and
// time are trusted verbatim from the caller; availability is the room
// query's concern, the quota is the only invariant enforced here.
//
// The count-then-insert pair holds a per-(user, date) lock, which closes
// the race between concurrent creates in one process. Across processes
// the check remains read-then-insert against the store, so the limit is
// best-effort there.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) (string, error) {
	lock := s.lockFor(booking.UserName, booking.BookingDate)
	lock.Lock()
	defer lock.Unlock()

	count, err := s.bookingRepo.CountForUserOnDate(ctx, booking.UserName, booking.BookingDate)
	if err != nil {
		return "", err
	}
	if count >= DailyBookingLimit {
		return "", domain.ErrDailyQuotaExceeded
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return "", err
	}

	log.Printf("✅ Booking created: %s (%s %s room %s floor %s)",
		booking.ID, booking.BookingDate, booking.BookingTime, booking.Room, booking.Floor)

	return booking.ID, nil
}

// ListForUser returns all bookings held by the given user
func (s *BookingService) ListForUser(ctx context.Context, userName string) ([]*models.Booking, error) {
	if userName == "" {
		return nil, domain.ErrMissingUserName
	}
	return s.bookingRepo.ListByUserName(ctx, userName)
}

// Delete removes exactly one booking by id. A second delete of the same
// id reports not-found. Ids that do not parse as record identifiers are
// treated the same as unknown ids.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrBookingNotFound
	}

	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookingNotFound
		}
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Booking deleted: %s", id)
	return nil
}

// lockFor returns the create lock for one (userName, bookingDate) pair.
// Entries are never evicted; the map is bounded by active user/date pairs.
func (s *BookingService) lockFor(userName, bookingDate string) *sync.Mutex {
	key := userName + "|" + bookingDate

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
