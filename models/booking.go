package models

import "time"

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
)

type BookingPackage string

const (
	PackageRoomOnly     BookingPackage = "room-only"
	PackageBedBreakfast BookingPackage = "bed-breakfast"
	PackageHalfBoard    BookingPackage = "half-board"
	PackageFullBoard    BookingPackage = "full-board"
)

type BookingSource string

const (
	SourceDirect      BookingSource = "direct"
	SourceBookingCom  BookingSource = "booking.com"
	SourceTripadvisor BookingSource = "tripadvisor"
	SourceExpedia     BookingSource = "expedia"
	SourcePhone       BookingSource = "phone"
	SourceWalkIn      BookingSource = "walk-in"
)

type Booking struct {
	ID          string         `json:"id"`
	GuestID     string         `json:"guestId"`
	RoomID      string         `json:"roomId"`
	CheckIn     time.Time      `json:"checkIn"`
	CheckOut    time.Time      `json:"checkOut"`
	Status      BookingStatus  `json:"status"`
	Package     BookingPackage `json:"package"`
	Source      BookingSource  `json:"source"`
	TotalAmount float64        `json:"totalAmount"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// bookingTransitions holds the reachable targets per state. checked-out and
// cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut},
}

func (b Booking) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[b.Status] {
		if next == target {
			return true
		}
	}
	return false
}
