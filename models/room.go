package models

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomReserved    RoomStatus = "reserved"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeFamily RoomType = "family"
)

type Room struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Type          RoomType   `json:"type"`
	Status        RoomStatus `json:"status"`
	Rate          float64    `json:"rate"`
	Amenities     []string   `json:"amenities"`
	MaxOccupancy  int        `json:"maxOccupancy"`
	Floor         int        `json:"floor"`
	NeedsCleaning bool       `json:"needsCleaning"`
	CleaningNotes string     `json:"cleaningNotes,omitempty"`
	LastCleaned   *time.Time `json:"lastCleaned,omitempty"`
}

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeFamily:
		return true
	}
	return false
}

// ApplyStatus sets the room status together with its cleaning side effects:
// entering "cleaning" flags the room dirty; returning to "available" clears
// the flag and stamps lastCleaned. The front desk may force any enum state,
// so the target itself is not restricted beyond enum membership.
func (r *Room) ApplyStatus(target RoomStatus, now time.Time) {
	r.Status = target
	r.NeedsCleaning = target == RoomCleaning
	if target == RoomAvailable {
		t := now
		r.LastCleaned = &t
	}
}
