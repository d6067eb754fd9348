package services

import (
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

// taxRate is the flat rate applied to every bill subtotal.
const taxRate = 0.10

type BillingService struct {
	Store *storage.Store
}

func NewBillingService(store *storage.Store) *BillingService {
	return &BillingService{Store: store}
}

type BillFilter struct {
	Search string
	Status models.BillStatus
	Range  DateRange
}

func (s *BillingService) List(f BillFilter, now time.Time) []models.Bill {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.Bill, 0, len(s.Store.Bills))
	for _, b := range s.Store.Bills {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if !f.Range.Matches(b.CreatedAt, now) {
			continue
		}
		if !containsFold(f.Search, s.guestName(b.GuestID), b.ID) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (s *BillingService) guestName(guestID string) string {
	for _, g := range s.Store.Guests {
		if g.ID == guestID {
			return g.Name
		}
	}
	return ""
}

// Create totals the line items and applies the flat tax rate. Amounts are
// recomputed server-side; client-sent totals are ignored.
func (s *BillingService) Create(b models.Bill) (models.Bill, error) {
	if b.BookingID == "" {
		return models.Bill{}, invalidField("bookingId", "booking is required")
	}
	if b.GuestID == "" {
		return models.Bill{}, invalidField("guestId", "guest is required")
	}
	if len(b.Items) == 0 {
		return models.Bill{}, invalidField("items", "bill needs at least one line item")
	}

	var subtotal float64
	for i := range b.Items {
		if b.Items[i].Quantity <= 0 {
			return models.Bill{}, invalidField("items", "quantities must be positive")
		}
		b.Items[i].Amount = b.Items[i].Rate * float64(b.Items[i].Quantity)
		subtotal += b.Items[i].Amount
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Subtotal = subtotal
	b.Tax = subtotal * taxRate
	b.Total = b.Subtotal + b.Tax
	b.Status = models.BillPending
	b.CreatedAt = time.Now()
	b.PaidAt = nil

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.Bills = append(s.Store.Bills, b)
	return b, nil
}

// MarkPaid settles an outstanding bill and stamps paidAt.
func (s *BillingService) MarkPaid(id string) (models.Bill, error) {
	return s.transition(id, models.BillPaid)
}

func (s *BillingService) Cancel(id string) (models.Bill, error) {
	return s.transition(id, models.BillCancelled)
}

func (s *BillingService) transition(id string, target models.BillStatus) (models.Bill, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Bills {
		if s.Store.Bills[i].ID != id {
			continue
		}
		if !s.Store.Bills[i].CanTransitionTo(target) {
			return models.Bill{}, ErrInvalidTransition
		}
		s.Store.Bills[i].Status = target
		if target == models.BillPaid {
			now := time.Now()
			s.Store.Bills[i].PaidAt = &now
		}
		return s.Store.Bills[i], nil
	}
	return models.Bill{}, ErrNotFound
}

type BillingStats struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Paid          int     `json:"paid"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingAmount float64 `json:"pendingAmount"`
}

func (s *BillingService) Stats() BillingStats {
	s.Store.RLock()
	defer s.Store.RUnlock()
	return billingStats(s.Store.Bills)
}

func billingStats(bills []models.Bill) BillingStats {
	stats := BillingStats{Total: len(bills)}
	for _, b := range bills {
		switch b.Status {
		case models.BillPending:
			stats.Pending++
			stats.PendingAmount += b.Total
		case models.BillPaid:
			stats.Paid++
			stats.TotalRevenue += b.Total
		}
	}
	return stats
}
