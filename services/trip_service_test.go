package services

import (
	"testing"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePackage(id string, price float64, maxParticipants int) models.TripPackage {
	return models.TripPackage{
		ID: id, Name: "Tour " + id, Destination: "Old Town", Duration: 1,
		Price: price, MaxParticipants: maxParticipants, IsActive: true,
	}
}

func newTripService(packages []models.TripPackage, bookings []models.TripBooking) *TripService {
	return NewTripService(&storage.Store{TripPackages: packages, TripBookings: bookings})
}

func TestTripCreateBookingPricing(t *testing.T) {
	svc := newTripService([]models.TripPackage{activePackage("p1", 75, 10)}, nil)

	b, err := svc.CreateBooking(models.TripBooking{PackageID: "p1", GuestID: "g1", Participants: 4})
	require.NoError(t, err)
	assert.Equal(t, float64(300), b.TotalPrice)
	assert.Equal(t, models.TripPending, b.Status)
	assert.False(t, b.BookingDate.IsZero())

	// An explicit price survives (group discounts are negotiated off-system).
	b, err = svc.CreateBooking(models.TripBooking{PackageID: "p1", GuestID: "g1", Participants: 4, TotalPrice: 250})
	require.NoError(t, err)
	assert.Equal(t, float64(250), b.TotalPrice)
}

func TestTripCreateBookingRejections(t *testing.T) {
	inactive := activePackage("p2", 50, 5)
	inactive.IsActive = false
	svc := newTripService([]models.TripPackage{activePackage("p1", 75, 10), inactive}, nil)
	var verr *ValidationError

	_, err := svc.CreateBooking(models.TripBooking{PackageID: "nope", GuestID: "g1", Participants: 1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "packageId", verr.Field)

	_, err = svc.CreateBooking(models.TripBooking{PackageID: "p2", GuestID: "g1", Participants: 1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "packageId", verr.Field)

	_, err = svc.CreateBooking(models.TripBooking{PackageID: "p1", GuestID: "g1", Participants: 11})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "participants", verr.Field)
}

func TestTripBookingTransitions(t *testing.T) {
	svc := newTripService(nil, []models.TripBooking{{ID: "t1", Status: models.TripPending}})

	// Pending cannot complete directly.
	_, err := svc.TransitionBooking("t1", models.TripCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	b, err := svc.TransitionBooking("t1", models.TripConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.TripConfirmed, b.Status)

	b, err = svc.TransitionBooking("t1", models.TripCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TripCompleted, b.Status)

	_, err = svc.TransitionBooking("t1", models.TripCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTripToggleActiveDoesNotCascade(t *testing.T) {
	svc := newTripService(
		[]models.TripPackage{activePackage("p1", 75, 10)},
		[]models.TripBooking{{ID: "t1", PackageID: "p1", Status: models.TripConfirmed}},
	)

	pkg, err := svc.ToggleActive("p1")
	require.NoError(t, err)
	assert.False(t, pkg.IsActive)

	// The existing booking is untouched; only new bookings are blocked.
	bookings := svc.ListBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, models.TripConfirmed, bookings[0].Status)

	_, err = svc.CreateBooking(models.TripBooking{PackageID: "p1", GuestID: "g1", Participants: 1})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestTripDeletePackageLeavesOrphanBookings(t *testing.T) {
	svc := newTripService(
		[]models.TripPackage{activePackage("p1", 75, 10)},
		[]models.TripBooking{{ID: "t1", PackageID: "p1", Status: models.TripPending}},
	)

	require.NoError(t, svc.DeletePackage("p1"))
	assert.Empty(t, svc.ListPackages(TripPackageFilter{}))
	assert.Len(t, svc.ListBookings(), 1)
}

func TestTripStats(t *testing.T) {
	inactive := activePackage("p2", 50, 5)
	inactive.IsActive = false
	svc := newTripService(
		[]models.TripPackage{activePackage("p1", 75, 10), inactive},
		[]models.TripBooking{
			{ID: "1", Status: models.TripPending},
			{ID: "2", Status: models.TripConfirmed},
			{ID: "3", Status: models.TripConfirmed},
			{ID: "4", Status: models.TripCancelled},
		},
	)

	stats := svc.Stats()
	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Confirmed)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 1, stats.ActivePackages)
}

func TestTripPackageFilterActive(t *testing.T) {
	inactive := activePackage("p2", 50, 5)
	inactive.IsActive = false
	svc := newTripService([]models.TripPackage{activePackage("p1", 75, 10), inactive}, nil)

	active := true
	got := svc.ListPackages(TripPackageFilter{Active: &active})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	assert.Len(t, svc.ListPackages(TripPackageFilter{}), 2)
}
