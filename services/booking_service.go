package services

import (
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

// BookingService owns reservations. Bookings are session-only: they re-seed
// from sample data on boot and are never snapshotted.
type BookingService struct {
	Store *storage.Store
}

func NewBookingService(store *storage.Store) *BookingService {
	return &BookingService{Store: store}
}

type BookingFilter struct {
	Search string
	Status models.BookingStatus
	Source models.BookingSource
}

func (s *BookingService) List(f BookingFilter) []models.Booking {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.Booking, 0, len(s.Store.Bookings))
	for _, b := range s.Store.Bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Source != "" && b.Source != f.Source {
			continue
		}
		if !containsFold(f.Search, s.guestName(b.GuestID), b.RoomID) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// guestName resolves the guest display name for search. A dangling guestId is
// tolerated and simply never matches the search term.
func (s *BookingService) guestName(guestID string) string {
	for _, g := range s.Store.Guests {
		if g.ID == guestID {
			return g.Name
		}
	}
	return ""
}

func (s *BookingService) Get(id string) (models.Booking, error) {
	s.Store.RLock()
	defer s.Store.RUnlock()
	for _, b := range s.Store.Bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *BookingService) Create(b models.Booking) (models.Booking, error) {
	if b.GuestID == "" {
		return models.Booking{}, invalidField("guestId", "guest is required")
	}
	if b.RoomID == "" {
		return models.Booking{}, invalidField("roomId", "room is required")
	}
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return models.Booking{}, invalidField("checkIn", "check-in and check-out dates are required")
	}
	if !b.CheckOut.After(b.CheckIn) {
		return models.Booking{}, invalidField("checkOut", "check-out must be after check-in")
	}
	if b.Status == "" {
		b.Status = models.BookingConfirmed
	}
	if !b.Status.Valid() {
		return models.Booking{}, invalidField("status", "unknown booking status")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now()

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.Bookings = append(s.Store.Bookings, b)
	return b, nil
}

func (s *BookingService) Delete(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Bookings {
		if s.Store.Bookings[i].ID == id {
			s.Store.Bookings = append(s.Store.Bookings[:i], s.Store.Bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Transition moves a booking along confirmed -> checked-in -> checked-out,
// with cancellation only while confirmed. The matching room status change is
// a separate operation the caller sequences; the two are not coupled here.
func (s *BookingService) Transition(id string, target models.BookingStatus) (models.Booking, error) {
	if !target.Valid() {
		return models.Booking{}, invalidField("status", "unknown booking status")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Bookings {
		if s.Store.Bookings[i].ID != id {
			continue
		}
		if !s.Store.Bookings[i].CanTransitionTo(target) {
			return models.Booking{}, ErrInvalidTransition
		}
		s.Store.Bookings[i].Status = target
		return s.Store.Bookings[i], nil
	}
	return models.Booking{}, ErrNotFound
}

type BookingStats struct {
	Total          int `json:"total"`
	Confirmed      int `json:"confirmed"`
	CheckedIn      int `json:"checkedIn"`
	TodayCheckIns  int `json:"todayCheckIns"`
	TodayCheckOuts int `json:"todayCheckOuts"`
}

func (s *BookingService) Stats(now time.Time) BookingStats {
	s.Store.RLock()
	defer s.Store.RUnlock()
	return bookingStats(s.Store.Bookings, now)
}

func bookingStats(bookings []models.Booking, now time.Time) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingConfirmed:
			stats.Confirmed++
			if sameDay(b.CheckIn, now) {
				stats.TodayCheckIns++
			}
		case models.BookingCheckedIn:
			stats.CheckedIn++
			if sameDay(b.CheckOut, now) {
				stats.TodayCheckOuts++
			}
		}
	}
	return stats
}
