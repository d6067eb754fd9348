package models

import "time"

type BillStatus string

const (
	BillPending   BillStatus = "pending"
	BillPaid      BillStatus = "paid"
	BillCancelled BillStatus = "cancelled"
)

type BillItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type Bill struct {
	ID        string     `json:"id"`
	BookingID string     `json:"bookingId"`
	GuestID   string     `json:"guestId"`
	Items     []BillItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	Status    BillStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

func (s BillStatus) Valid() bool {
	switch s {
	case BillPending, BillPaid, BillCancelled:
		return true
	}
	return false
}

// Only an outstanding bill can settle or be voided.
var billTransitions = map[BillStatus][]BillStatus{
	BillPending: {BillPaid, BillCancelled},
}

func (b Bill) CanTransitionTo(target BillStatus) bool {
	for _, next := range billTransitions[b.Status] {
		if next == target {
			return true
		}
	}
	return false
}
