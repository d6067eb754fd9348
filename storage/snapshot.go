package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hoteldash-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted collection keys. These match the keys the dashboard has always
// saved under, so existing blobs survive a backend swap.
const (
	KeyRooms             = "hotel_rooms"
	KeyHousekeepingTasks = "hotel_housekeeping_tasks"
	KeyInventory         = "hotel_inventory"
)

// SnapshotStore persists whole collections as JSON blobs, one row per key.
type SnapshotStore struct {
	DB *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{DB: db}
}

// Load reads the blob stored under key into dest. It returns false with no
// error when nothing has been saved yet, so callers can fall back to the
// bundled sample data.
func (s *SnapshotStore) Load(key string, dest any) (bool, error) {
	var snap models.Snapshot
	if err := s.DB.First(&snap, "`key` = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(snap.Data, dest); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

// Save overwrites the blob under key with the JSON encoding of value.
// Last write wins.
func (s *SnapshotStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	snap := models.Snapshot{
		Key:       key,
		Data:      datatypes.JSON(raw),
		UpdatedAt: time.Now(),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}
