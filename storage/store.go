package storage

import (
	"sync"

	"hoteldash-backend/models"
)

// Store is the in-memory session state behind every dashboard page. Rooms,
// housekeeping tasks and inventory are restored from saved snapshots; the
// remaining collections re-seed from the bundled sample data on every boot.
// One coarse lock guards the whole snapshot: mutations are short, synchronous
// and last-write-wins.
type Store struct {
	sync.RWMutex

	Rooms        []models.Room
	Guests       []models.Guest
	Bookings     []models.Booking
	Tasks        []models.HousekeepingTask
	MenuItems    []models.MenuItem
	Orders       []models.Order
	Inventory    []models.InventoryItem
	Bills        []models.Bill
	TripPackages []models.TripPackage
	TripBookings []models.TripBooking
}

// NewStore builds the session state, preferring saved snapshots over seeds
// for the persisted collections. A nil snapshot store seeds everything.
func NewStore(snapshots *SnapshotStore) (*Store, error) {
	store := &Store{
		Guests:       SeedGuests(),
		Bookings:     SeedBookings(),
		MenuItems:    SeedMenuItems(),
		Orders:       SeedOrders(),
		Bills:        SeedBills(),
		TripPackages: SeedTripPackages(),
		TripBookings: SeedTripBookings(),
	}

	if snapshots == nil {
		store.Rooms = SeedRooms()
		store.Tasks = SeedHousekeepingTasks()
		store.Inventory = SeedInventoryItems()
		return store, nil
	}

	found, err := snapshots.Load(KeyRooms, &store.Rooms)
	if err != nil {
		return nil, err
	}
	if !found {
		store.Rooms = SeedRooms()
	}

	found, err = snapshots.Load(KeyHousekeepingTasks, &store.Tasks)
	if err != nil {
		return nil, err
	}
	if !found {
		store.Tasks = SeedHousekeepingTasks()
	}

	found, err = snapshots.Load(KeyInventory, &store.Inventory)
	if err != nil {
		return nil, err
	}
	if !found {
		store.Inventory = SeedInventoryItems()
	}

	return store, nil
}
