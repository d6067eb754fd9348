package models

import "time"

type InventoryCategory string

const (
	InventoryFood      InventoryCategory = "food"
	InventoryBeverage  InventoryCategory = "beverage"
	InventoryCleaning  InventoryCategory = "cleaning"
	InventoryAmenities InventoryCategory = "amenities"
	InventoryOther     InventoryCategory = "other"
)

// StockBand is the derived stock level of an item. It is computed from the
// current/min/max counts and never stored.
type StockBand string

const (
	StockLow    StockBand = "low"
	StockNormal StockBand = "normal"
	StockHigh   StockBand = "high"
)

type InventoryItem struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      InventoryCategory `json:"category"`
	CurrentStock  int               `json:"currentStock"`
	MinStock      int               `json:"minStock"`
	MaxStock      int               `json:"maxStock"`
	Unit          string            `json:"unit"`
	Cost          float64           `json:"cost"`
	Supplier      string            `json:"supplier,omitempty"`
	LastRestocked *time.Time        `json:"lastRestocked,omitempty"`
}

func (c InventoryCategory) Valid() bool {
	switch c {
	case InventoryFood, InventoryBeverage, InventoryCleaning, InventoryAmenities, InventoryOther:
		return true
	}
	return false
}

func (b StockBand) Valid() bool {
	switch b {
	case StockLow, StockNormal, StockHigh:
		return true
	}
	return false
}

// Band classifies the item's stock level. Low is checked first so it wins in
// degenerate configs where minStock >= 0.9*maxStock.
func (i InventoryItem) Band() StockBand {
	if i.CurrentStock <= i.MinStock {
		return StockLow
	}
	if float64(i.CurrentStock) >= 0.9*float64(i.MaxStock) {
		return StockHigh
	}
	return StockNormal
}

// ClampStock applies a new absolute stock count, clamped at zero. Stock never
// goes negative no matter the requested delta.
func (i *InventoryItem) ClampStock(newStock int) {
	if newStock < 0 {
		newStock = 0
	}
	i.CurrentStock = newStock
}
