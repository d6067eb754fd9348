package services

import (
	"testing"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryService(items ...models.InventoryItem) *InventoryService {
	store := &storage.Store{Inventory: items}
	return NewInventoryService(store, nil)
}

func TestStockBandClassification(t *testing.T) {
	cases := []struct {
		name    string
		current int
		min     int
		max     int
		want    models.StockBand
	}{
		{"below min", 5, 10, 50, models.StockLow},
		{"at min", 10, 10, 50, models.StockLow},
		{"mid range", 25, 10, 50, models.StockNormal},
		{"at 90 percent", 45, 10, 50, models.StockHigh},
		{"at max", 50, 10, 50, models.StockHigh},
		{"zero stock", 0, 0, 50, models.StockLow},
		{"low wins when thresholds overlap", 46, 46, 50, models.StockLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := models.InventoryItem{CurrentStock: tc.current, MinStock: tc.min, MaxStock: tc.max}
			assert.Equal(t, tc.want, item.Band())
		})
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	svc := newInventoryService(models.InventoryItem{ID: "i1", Name: "Coffee", CurrentStock: 5, MinStock: 2, MaxStock: 20})

	item, err := svc.AdjustStock("i1", -3)
	require.NoError(t, err)
	assert.Equal(t, 2, item.CurrentStock)

	item, err = svc.AdjustStock("i1", -100)
	require.NoError(t, err)
	assert.Equal(t, 0, item.CurrentStock)

	item, err = svc.AdjustStock("i1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.CurrentStock)
	assert.Nil(t, item.LastRestocked)
}

func TestRestockFillsToMax(t *testing.T) {
	svc := newInventoryService(models.InventoryItem{ID: "i1", Name: "Towels", CurrentStock: 3, MinStock: 5, MaxStock: 40})

	item, err := svc.Restock("i1")
	require.NoError(t, err)
	assert.Equal(t, 40, item.CurrentStock)
	require.NotNil(t, item.LastRestocked)
	assert.Equal(t, models.StockHigh, item.Band())
}

func TestInventoryCreateValidation(t *testing.T) {
	svc := newInventoryService()

	var verr *ValidationError

	_, err := svc.Create(models.InventoryItem{Name: " ", MinStock: 1, MaxStock: 2})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = svc.Create(models.InventoryItem{Name: "Soap", MinStock: 10, MaxStock: 5})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "maxStock", verr.Field)

	item, err := svc.Create(models.InventoryItem{Name: "Soap", CurrentStock: -4, MinStock: 1, MaxStock: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, item.CurrentStock)
	assert.Equal(t, models.InventoryOther, item.Category)
	assert.Equal(t, "pieces", item.Unit)
}

func TestInventoryStats(t *testing.T) {
	svc := newInventoryService(
		models.InventoryItem{ID: "1", Category: models.InventoryFood, CurrentStock: 5, MinStock: 10, MaxStock: 50, Cost: 2},
		models.InventoryItem{ID: "2", Category: models.InventoryFood, CurrentStock: 48, MinStock: 10, MaxStock: 50, Cost: 1},
		models.InventoryItem{ID: "3", Category: models.InventoryCleaning, CurrentStock: 25, MinStock: 10, MaxStock: 50, Cost: 4},
	)

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.HighStock)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, float64(5*2+48*1+25*4), stats.TotalValue)
}

func TestInventoryStatsDegenerateThresholds(t *testing.T) {
	// minStock >= 0.9*maxStock: the card counts overlap, the band does not.
	svc := newInventoryService(
		models.InventoryItem{ID: "1", Category: models.InventoryFood, CurrentStock: 46, MinStock: 46, MaxStock: 50},
	)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.HighStock)
	assert.Equal(t, models.StockLow, svc.List(InventoryFilter{})[0].Band())
}

func TestInventoryFilterByBand(t *testing.T) {
	svc := newInventoryService(
		models.InventoryItem{ID: "1", Name: "Coffee", Supplier: "Acme", CurrentStock: 5, MinStock: 10, MaxStock: 50},
		models.InventoryItem{ID: "2", Name: "Towels", Supplier: "Linens Co", CurrentStock: 25, MinStock: 10, MaxStock: 50},
	)

	got := svc.List(InventoryFilter{Band: models.StockLow})
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee", got[0].Name)

	// Search covers both name and supplier.
	got = svc.List(InventoryFilter{Search: "linens"})
	require.Len(t, got, 1)
	assert.Equal(t, "Towels", got[0].Name)
}
