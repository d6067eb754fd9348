package services

import (
	"testing"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingService(bills ...models.Bill) *BillingService {
	store := &storage.Store{Bills: bills}
	return NewBillingService(store)
}

func TestBillCreateComputesTotals(t *testing.T) {
	svc := newBillingService()

	bill, err := svc.Create(models.Bill{
		BookingID: "b1",
		GuestID:   "g1",
		Items: []models.BillItem{
			{Description: "Room charge", Quantity: 3, Rate: 150},
			{Description: "Room service", Quantity: 2, Rate: 45},
		},
		// Client-sent totals are ignored.
		Subtotal: 1,
		Tax:      2,
		Total:    3,
		Status:   models.BillPaid,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(450), bill.Items[0].Amount)
	assert.Equal(t, float64(90), bill.Items[1].Amount)
	assert.Equal(t, float64(540), bill.Subtotal)
	assert.InDelta(t, 54, bill.Tax, 1e-9)
	assert.InDelta(t, 594, bill.Total, 1e-9)
	assert.Equal(t, models.BillPending, bill.Status)
	assert.Nil(t, bill.PaidAt)
}

func TestBillCreateValidation(t *testing.T) {
	svc := newBillingService()
	var verr *ValidationError

	_, err := svc.Create(models.Bill{GuestID: "g1", Items: []models.BillItem{{Quantity: 1, Rate: 10}}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bookingId", verr.Field)

	_, err = svc.Create(models.Bill{BookingID: "b1", GuestID: "g1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)

	_, err = svc.Create(models.Bill{BookingID: "b1", GuestID: "g1", Items: []models.BillItem{{Quantity: 0, Rate: 10}}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)
}

func TestBillLifecycle(t *testing.T) {
	svc := newBillingService(models.Bill{ID: "1", Status: models.BillPending, Total: 100})

	bill, err := svc.MarkPaid("1")
	require.NoError(t, err)
	assert.Equal(t, models.BillPaid, bill.Status)
	require.NotNil(t, bill.PaidAt)

	// Paid is terminal.
	_, err = svc.Cancel("1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.MarkPaid("1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.MarkPaid("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBillingStats(t *testing.T) {
	svc := newBillingService(
		models.Bill{ID: "1", Status: models.BillPending, Total: 100},
		models.Bill{ID: "2", Status: models.BillPaid, Total: 200},
		models.Bill{ID: "3", Status: models.BillPaid, Total: 50},
		models.Bill{ID: "4", Status: models.BillCancelled, Total: 999},
	)

	stats := svc.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, float64(250), stats.TotalRevenue)
	assert.Equal(t, float64(100), stats.PendingAmount)
}

func TestBillListDateRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newBillingService(
		models.Bill{ID: "today", CreatedAt: now.Add(-2 * time.Hour)},
		models.Bill{ID: "lastweek", CreatedAt: now.AddDate(0, 0, -5)},
		models.Bill{ID: "old", CreatedAt: now.AddDate(0, -2, 0)},
	)

	assert.Len(t, svc.List(BillFilter{}, now), 3)
	assert.Len(t, svc.List(BillFilter{Range: DateToday}, now), 1)
	assert.Len(t, svc.List(BillFilter{Range: DateWeek}, now), 2)
	assert.Len(t, svc.List(BillFilter{Range: DateMonth}, now), 2)
}

func TestBillSearchByGuestName(t *testing.T) {
	store := &storage.Store{
		Guests: []models.Guest{{ID: "g1", Name: "John Smith"}},
		Bills:  []models.Bill{{ID: "1", GuestID: "g1"}, {ID: "2", GuestID: "dangling"}},
	}
	svc := NewBillingService(store)

	got := svc.List(BillFilter{Search: "smith"}, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
