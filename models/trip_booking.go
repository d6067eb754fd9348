package models

import "time"

type TripBookingStatus string

const (
	TripPending   TripBookingStatus = "pending"
	TripConfirmed TripBookingStatus = "confirmed"
	TripCompleted TripBookingStatus = "completed"
	TripCancelled TripBookingStatus = "cancelled"
)

type TripBooking struct {
	ID                string            `json:"id"`
	PackageID         string            `json:"packageId"`
	GuestID           string            `json:"guestId"`
	BookingDate       time.Time         `json:"bookingDate"`
	TripDate          time.Time         `json:"tripDate"`
	Participants      int               `json:"participants"`
	TotalPrice        float64           `json:"totalPrice"`
	Status            TripBookingStatus `json:"status"`
	SpecialRequests   string            `json:"specialRequests,omitempty"`
	VehiclePreference string            `json:"vehiclePreference,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

func (s TripBookingStatus) Valid() bool {
	switch s {
	case TripPending, TripConfirmed, TripCompleted, TripCancelled:
		return true
	}
	return false
}

var tripTransitions = map[TripBookingStatus][]TripBookingStatus{
	TripPending:   {TripConfirmed, TripCancelled},
	TripConfirmed: {TripCompleted, TripCancelled},
}

func (t TripBooking) CanTransitionTo(target TripBookingStatus) bool {
	for _, next := range tripTransitions[t.Status] {
		if next == target {
			return true
		}
	}
	return false
}
