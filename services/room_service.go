package services

import (
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

type RoomService struct {
	Store     *storage.Store
	Snapshots *storage.SnapshotStore
}

func NewRoomService(store *storage.Store, snapshots *storage.SnapshotStore) *RoomService {
	return &RoomService{Store: store, Snapshots: snapshots}
}

// RoomFilter criteria combine by AND; zero values mean "all".
type RoomFilter struct {
	Search string
	Status models.RoomStatus
	Type   models.RoomType
	Floor  string
}

func (f RoomFilter) matches(r models.Room) bool {
	if !containsFold(f.Search, r.Number) {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Floor != "" && strconv.Itoa(r.Floor) != f.Floor {
		return false
	}
	return true
}

func (s *RoomService) List(f RoomFilter) []models.Room {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.Room, 0, len(s.Store.Rooms))
	for _, r := range s.Store.Rooms {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *RoomService) Get(id string) (models.Room, error) {
	s.Store.RLock()
	defer s.Store.RUnlock()

	for _, r := range s.Store.Rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, ErrNotFound
}

func validateRoom(r models.Room) error {
	if strings.TrimSpace(r.Number) == "" {
		return invalidField("number", "room number is required")
	}
	if r.Rate <= 0 {
		return invalidField("rate", "rate must be positive")
	}
	if !r.Type.Valid() {
		return invalidField("type", "unknown room type")
	}
	if !r.Status.Valid() {
		return invalidField("status", "unknown room status")
	}
	return nil
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	room.Number = strings.TrimSpace(room.Number)
	if room.Type == "" {
		room.Type = models.RoomTypeSingle
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if room.MaxOccupancy <= 0 {
		room.MaxOccupancy = 1
	}
	if room.Floor <= 0 {
		room.Floor = 1
	}
	if err := validateRoom(room); err != nil {
		return models.Room{}, err
	}
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.Rooms = append(s.Store.Rooms, room)
	s.persist()
	return room, nil
}

func (s *RoomService) Update(id string, room models.Room) (models.Room, error) {
	room.Number = strings.TrimSpace(room.Number)
	if err := validateRoom(room); err != nil {
		return models.Room{}, err
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Rooms {
		if s.Store.Rooms[i].ID == id {
			room.ID = id
			s.Store.Rooms[i] = room
			s.persist()
			return room, nil
		}
	}
	return models.Room{}, ErrNotFound
}

func (s *RoomService) Delete(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Rooms {
		if s.Store.Rooms[i].ID == id {
			s.Store.Rooms = append(s.Store.Rooms[:i], s.Store.Rooms[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// SetStatus forces a room into any enum state, applying the cleaning side
// effects. The front desk sequences booking transitions separately.
func (s *RoomService) SetStatus(id string, target models.RoomStatus) (models.Room, error) {
	if !target.Valid() {
		return models.Room{}, invalidField("status", "unknown room status")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Rooms {
		if s.Store.Rooms[i].ID == id {
			s.Store.Rooms[i].ApplyStatus(target, time.Now())
			s.persist()
			return s.Store.Rooms[i], nil
		}
	}
	return models.Room{}, ErrNotFound
}

type RoomStats struct {
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	Reserved      int     `json:"reserved"`
	Cleaning      int     `json:"cleaning"`
	Maintenance   int     `json:"maintenance"`
	OccupancyRate float64 `json:"occupancyRate"`
}

func (s *RoomService) Stats() RoomStats {
	s.Store.RLock()
	defer s.Store.RUnlock()
	return roomStats(s.Store.Rooms)
}

func roomStats(rooms []models.Room) RoomStats {
	stats := RoomStats{Total: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case models.RoomAvailable:
			stats.Available++
		case models.RoomOccupied:
			stats.Occupied++
		case models.RoomReserved:
			stats.Reserved++
		case models.RoomCleaning:
			stats.Cleaning++
		case models.RoomMaintenance:
			stats.Maintenance++
		}
	}
	if stats.Total > 0 {
		stats.OccupancyRate = math.Round(float64(stats.Occupied) / float64(stats.Total) * 100)
	}
	return stats
}

// persist mirrors the rooms collection into its snapshot. Callers hold the
// store lock.
func (s *RoomService) persist() {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Save(storage.KeyRooms, s.Store.Rooms); err != nil {
		log.Printf("warning: failed to save rooms snapshot: %v", err)
	}
}
