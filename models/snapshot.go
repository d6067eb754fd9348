package models

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot is one persisted collection blob, keyed the way the dashboard keys
// its saved state (hotel_rooms, hotel_housekeeping_tasks, hotel_inventory).
// Data holds the JSON array of records with ISO-8601 dates.
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
