package services

import (
	"strings"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

// TripService manages the tour catalog and its bookings.
type TripService struct {
	Store *storage.Store
}

func NewTripService(store *storage.Store) *TripService {
	return &TripService{Store: store}
}

type TripPackageFilter struct {
	Search string
	Active *bool
}

func (s *TripService) ListPackages(f TripPackageFilter) []models.TripPackage {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.TripPackage, 0, len(s.Store.TripPackages))
	for _, p := range s.Store.TripPackages {
		if !containsFold(f.Search, p.Name, p.Destination) {
			continue
		}
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		out = append(out, p)
	}
	return out
}

func validateTripPackage(p models.TripPackage) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidField("name", "package name is required")
	}
	if strings.TrimSpace(p.Destination) == "" {
		return invalidField("destination", "destination is required")
	}
	if p.Duration <= 0 {
		return invalidField("duration", "duration must be at least one day")
	}
	if p.Price <= 0 {
		return invalidField("price", "price must be positive")
	}
	if p.MaxParticipants <= 0 {
		return invalidField("maxParticipants", "maxParticipants must be positive")
	}
	return nil
}

func (s *TripService) CreatePackage(p models.TripPackage) (models.TripPackage, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateTripPackage(p); err != nil {
		return models.TripPackage{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.TripPackages = append(s.Store.TripPackages, p)
	return p, nil
}

func (s *TripService) UpdatePackage(id string, p models.TripPackage) (models.TripPackage, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateTripPackage(p); err != nil {
		return models.TripPackage{}, err
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.TripPackages {
		if s.Store.TripPackages[i].ID == id {
			p.ID = id
			p.CreatedAt = s.Store.TripPackages[i].CreatedAt
			p.UpdatedAt = time.Now()
			s.Store.TripPackages[i] = p
			return p, nil
		}
	}
	return models.TripPackage{}, ErrNotFound
}

// DeletePackage removes the package only. Existing trip bookings keep their
// packageId; lookups tolerate the orphan.
func (s *TripService) DeletePackage(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.TripPackages {
		if s.Store.TripPackages[i].ID == id {
			s.Store.TripPackages = append(s.Store.TripPackages[:i], s.Store.TripPackages[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleActive flips the package's availability. Nothing cascades to
// existing trip bookings.
func (s *TripService) ToggleActive(id string) (models.TripPackage, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.TripPackages {
		if s.Store.TripPackages[i].ID == id {
			s.Store.TripPackages[i].IsActive = !s.Store.TripPackages[i].IsActive
			return s.Store.TripPackages[i], nil
		}
	}
	return models.TripPackage{}, ErrNotFound
}

func (s *TripService) ListBookings() []models.TripBooking {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.TripBooking, len(s.Store.TripBookings))
	copy(out, s.Store.TripBookings)
	return out
}

func (s *TripService) CreateBooking(b models.TripBooking) (models.TripBooking, error) {
	if b.GuestID == "" {
		return models.TripBooking{}, invalidField("guestId", "guest is required")
	}
	if b.Participants <= 0 {
		return models.TripBooking{}, invalidField("participants", "participants must be positive")
	}

	s.Store.Lock()
	defer s.Store.Unlock()

	pkg, ok := s.findPackage(b.PackageID)
	if !ok {
		return models.TripBooking{}, invalidField("packageId", "unknown trip package")
	}
	if !pkg.IsActive {
		return models.TripBooking{}, invalidField("packageId", "package is not active")
	}
	if b.Participants > pkg.MaxParticipants {
		return models.TripBooking{}, invalidField("participants", "exceeds package capacity")
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.TotalPrice == 0 {
		b.TotalPrice = pkg.Price * float64(b.Participants)
	}
	now := time.Now()
	if b.BookingDate.IsZero() {
		b.BookingDate = now
	}
	b.Status = models.TripPending
	b.CreatedAt = now

	s.Store.TripBookings = append(s.Store.TripBookings, b)
	return b, nil
}

func (s *TripService) findPackage(id string) (models.TripPackage, bool) {
	for _, p := range s.Store.TripPackages {
		if p.ID == id {
			return p, true
		}
	}
	return models.TripPackage{}, false
}

func (s *TripService) TransitionBooking(id string, target models.TripBookingStatus) (models.TripBooking, error) {
	if !target.Valid() {
		return models.TripBooking{}, invalidField("status", "unknown trip booking status")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.TripBookings {
		if s.Store.TripBookings[i].ID != id {
			continue
		}
		if !s.Store.TripBookings[i].CanTransitionTo(target) {
			return models.TripBooking{}, ErrInvalidTransition
		}
		s.Store.TripBookings[i].Status = target
		return s.Store.TripBookings[i], nil
	}
	return models.TripBooking{}, ErrNotFound
}

type TripStats struct {
	TotalBookings  int `json:"totalBookings"`
	Pending        int `json:"pending"`
	Confirmed      int `json:"confirmed"`
	Completed      int `json:"completed"`
	ActivePackages int `json:"activePackages"`
}

func (s *TripService) Stats() TripStats {
	s.Store.RLock()
	defer s.Store.RUnlock()

	stats := TripStats{TotalBookings: len(s.Store.TripBookings)}
	for _, b := range s.Store.TripBookings {
		switch b.Status {
		case models.TripPending:
			stats.Pending++
		case models.TripConfirmed:
			stats.Confirmed++
		case models.TripCompleted:
			stats.Completed++
		}
	}
	for _, p := range s.Store.TripPackages {
		if p.IsActive {
			stats.ActivePackages++
		}
	}
	return stats
}
