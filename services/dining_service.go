package services

import (
	"strings"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

// DiningService covers both halves of the dining page: the menu catalog and
// the kitchen order queue. Both collections are session-only.
type DiningService struct {
	Store *storage.Store
}

func NewDiningService(store *storage.Store) *DiningService {
	return &DiningService{Store: store}
}

type MenuFilter struct {
	Search    string
	Category  models.MenuCategory
	Available *bool
}

func (s *DiningService) ListMenu(f MenuFilter) []models.MenuItem {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.MenuItem, 0, len(s.Store.MenuItems))
	for _, m := range s.Store.MenuItems {
		if !containsFold(f.Search, m.Name) {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.Available != nil && m.Available != *f.Available {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *DiningService) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.MenuItem{}, invalidField("name", "item name is required")
	}
	if item.Price <= 0 {
		return models.MenuItem{}, invalidField("price", "price must be positive")
	}
	if item.Category == "" {
		item.Category = models.CategorySnack
	}
	if !item.Category.Valid() {
		return models.MenuItem{}, invalidField("category", "unknown menu category")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.MenuItems = append(s.Store.MenuItems, item)
	return item, nil
}

func (s *DiningService) UpdateMenuItem(id string, item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.MenuItem{}, invalidField("name", "item name is required")
	}
	if item.Price <= 0 {
		return models.MenuItem{}, invalidField("price", "price must be positive")
	}
	if !item.Category.Valid() {
		return models.MenuItem{}, invalidField("category", "unknown menu category")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.MenuItems {
		if s.Store.MenuItems[i].ID == id {
			item.ID = id
			s.Store.MenuItems[i] = item
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (s *DiningService) DeleteMenuItem(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.MenuItems {
		if s.Store.MenuItems[i].ID == id {
			s.Store.MenuItems = append(s.Store.MenuItems[:i], s.Store.MenuItems[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *DiningService) ToggleMenuItemAvailability(id string) (models.MenuItem, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.MenuItems {
		if s.Store.MenuItems[i].ID == id {
			s.Store.MenuItems[i].Available = !s.Store.MenuItems[i].Available
			return s.Store.MenuItems[i], nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

type OrderFilter struct {
	Status models.OrderStatus
}

func (s *DiningService) ListOrders(f OrderFilter) []models.Order {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.Order, 0, len(s.Store.Orders))
	for _, o := range s.Store.Orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

// CreateOrder prices the order from the current menu; unavailable or unknown
// items are rejected before anything is written.
func (s *DiningService) CreateOrder(o models.Order) (models.Order, error) {
	if len(o.Items) == 0 {
		return models.Order{}, invalidField("items", "order needs at least one item")
	}

	s.Store.Lock()
	defer s.Store.Unlock()

	var total float64
	for _, line := range o.Items {
		if line.Quantity <= 0 {
			return models.Order{}, invalidField("items", "quantities must be positive")
		}
		item, ok := s.menuItem(line.MenuItemID)
		if !ok {
			return models.Order{}, invalidField("items", "unknown menu item "+line.MenuItemID)
		}
		if !item.Available {
			return models.Order{}, invalidField("items", item.Name+" is not available")
		}
		total += item.Price * float64(line.Quantity)
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.Status = models.OrderPending
	o.TotalAmount = total
	o.OrderTime = time.Now()

	s.Store.Orders = append(s.Store.Orders, o)
	return o, nil
}

func (s *DiningService) menuItem(id string) (models.MenuItem, bool) {
	for _, m := range s.Store.MenuItems {
		if m.ID == id {
			return m, true
		}
	}
	return models.MenuItem{}, false
}

// AdvanceOrder steps an order to its next status in the kitchen chain.
// Served and cancelled orders have no next step.
func (s *DiningService) AdvanceOrder(id string) (models.Order, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Orders {
		if s.Store.Orders[i].ID != id {
			continue
		}
		next, ok := models.NextOrderStatus(s.Store.Orders[i].Status)
		if !ok {
			return models.Order{}, ErrInvalidTransition
		}
		s.Store.Orders[i].Status = next
		return s.Store.Orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

// SetOrderStatus accepts either the next status in the chain or a
// cancellation from any non-terminal state.
func (s *DiningService) SetOrderStatus(id string, target models.OrderStatus) (models.Order, error) {
	if !target.Valid() {
		return models.Order{}, invalidField("status", "unknown order status")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Orders {
		if s.Store.Orders[i].ID != id {
			continue
		}
		if target == models.OrderCancelled {
			if !s.Store.Orders[i].Cancellable() {
				return models.Order{}, ErrInvalidTransition
			}
		} else if next, ok := models.NextOrderStatus(s.Store.Orders[i].Status); !ok || next != target {
			return models.Order{}, ErrInvalidTransition
		}
		s.Store.Orders[i].Status = target
		return s.Store.Orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

func (s *DiningService) CancelOrder(id string) (models.Order, error) {
	return s.SetOrderStatus(id, models.OrderCancelled)
}

type MenuStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	Categories  int `json:"categories"`
}

func (s *DiningService) MenuStats() MenuStats {
	s.Store.RLock()
	defer s.Store.RUnlock()

	stats := MenuStats{Total: len(s.Store.MenuItems)}
	seen := make(map[models.MenuCategory]struct{})
	for _, m := range s.Store.MenuItems {
		if m.Available {
			stats.Available++
		} else {
			stats.Unavailable++
		}
		seen[m.Category] = struct{}{}
	}
	stats.Categories = len(seen)
	return stats
}

type OrderStats struct {
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Served    int `json:"served"`
}

func (s *DiningService) OrderStats() OrderStats {
	s.Store.RLock()
	defer s.Store.RUnlock()

	var stats OrderStats
	for _, o := range s.Store.Orders {
		switch o.Status {
		case models.OrderPending:
			stats.Pending++
		case models.OrderPreparing:
			stats.Preparing++
		case models.OrderReady:
			stats.Ready++
		case models.OrderServed:
			stats.Served++
		}
	}
	return stats
}
