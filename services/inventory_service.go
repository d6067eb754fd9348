package services

import (
	"log"
	"strings"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

type InventoryService struct {
	Store     *storage.Store
	Snapshots *storage.SnapshotStore
}

func NewInventoryService(store *storage.Store, snapshots *storage.SnapshotStore) *InventoryService {
	return &InventoryService{Store: store, Snapshots: snapshots}
}

type InventoryFilter struct {
	Search   string
	Category models.InventoryCategory
	Band     models.StockBand
}

func (f InventoryFilter) matches(i models.InventoryItem) bool {
	if !containsFold(f.Search, i.Name, i.Supplier) {
		return false
	}
	if f.Category != "" && i.Category != f.Category {
		return false
	}
	if f.Band != "" && i.Band() != f.Band {
		return false
	}
	return true
}

func (s *InventoryService) List(f InventoryFilter) []models.InventoryItem {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.InventoryItem, 0, len(s.Store.Inventory))
	for _, item := range s.Store.Inventory {
		if f.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func validateInventoryItem(i models.InventoryItem) error {
	if strings.TrimSpace(i.Name) == "" {
		return invalidField("name", "item name is required")
	}
	if !i.Category.Valid() {
		return invalidField("category", "unknown inventory category")
	}
	if i.MinStock < 0 || i.MaxStock < 0 {
		return invalidField("minStock", "stock thresholds cannot be negative")
	}
	if i.MaxStock < i.MinStock {
		return invalidField("maxStock", "maxStock must be at least minStock")
	}
	return nil
}

func (s *InventoryService) Create(item models.InventoryItem) (models.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Category == "" {
		item.Category = models.InventoryOther
	}
	if item.Unit == "" {
		item.Unit = "pieces"
	}
	if err := validateInventoryItem(item); err != nil {
		return models.InventoryItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.ClampStock(item.CurrentStock)

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.Inventory = append(s.Store.Inventory, item)
	s.persist()
	return item, nil
}

func (s *InventoryService) Update(id string, item models.InventoryItem) (models.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if err := validateInventoryItem(item); err != nil {
		return models.InventoryItem{}, err
	}
	item.ClampStock(item.CurrentStock)

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Inventory {
		if s.Store.Inventory[i].ID == id {
			item.ID = id
			s.Store.Inventory[i] = item
			s.persist()
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

func (s *InventoryService) Delete(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Inventory {
		if s.Store.Inventory[i].ID == id {
			s.Store.Inventory = append(s.Store.Inventory[:i], s.Store.Inventory[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// AdjustStock applies a signed delta to the item's stock, clamped at zero.
// lastRestocked is untouched; only an explicit restock records it.
func (s *InventoryService) AdjustStock(id string, delta int) (models.InventoryItem, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Inventory {
		if s.Store.Inventory[i].ID == id {
			s.Store.Inventory[i].ClampStock(s.Store.Inventory[i].CurrentStock + delta)
			s.persist()
			return s.Store.Inventory[i], nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

// Restock refills the item to maxStock and stamps lastRestocked.
func (s *InventoryService) Restock(id string) (models.InventoryItem, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Inventory {
		if s.Store.Inventory[i].ID == id {
			now := time.Now()
			s.Store.Inventory[i].CurrentStock = s.Store.Inventory[i].MaxStock
			s.Store.Inventory[i].LastRestocked = &now
			s.persist()
			return s.Store.Inventory[i], nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

type InventoryStats struct {
	Total      int     `json:"total"`
	LowStock   int     `json:"lowStock"`
	HighStock  int     `json:"highStock"`
	Categories int     `json:"categories"`
	TotalValue float64 `json:"totalValue"`
}

func (s *InventoryService) Stats() InventoryStats {
	s.Store.RLock()
	defer s.Store.RUnlock()
	return inventoryStats(s.Store.Inventory)
}

func inventoryStats(items []models.InventoryItem) InventoryStats {
	stats := InventoryStats{Total: len(items)}
	seen := make(map[models.InventoryCategory]struct{})
	for _, i := range items {
		// Card counts use the raw thresholds, so a degenerate item can show
		// up under both; band classification stays mutually exclusive.
		if i.CurrentStock <= i.MinStock {
			stats.LowStock++
		}
		if float64(i.CurrentStock) >= 0.9*float64(i.MaxStock) {
			stats.HighStock++
		}
		stats.TotalValue += float64(i.CurrentStock) * i.Cost
		seen[i.Category] = struct{}{}
	}
	stats.Categories = len(seen)
	return stats
}

func (s *InventoryService) persist() {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Save(storage.KeyInventory, s.Store.Inventory); err != nil {
		log.Printf("warning: failed to save inventory snapshot: %v", err)
	}
}
