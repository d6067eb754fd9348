package services

import (
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"
)

// ReportService assembles the dashboard landing cards from the live session
// state. Every figure is total over an empty store.
type ReportService struct {
	Store *storage.Store
}

func NewReportService(store *storage.Store) *ReportService {
	return &ReportService{Store: store}
}

type DashboardStats struct {
	TotalRooms     int     `json:"totalRooms"`
	AvailableRooms int     `json:"availableRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	CleaningRooms  int     `json:"cleaningRooms"`
	TodayCheckIns  int     `json:"todayCheckIns"`
	TodayCheckOuts int     `json:"todayCheckOuts"`
	TodayOrders    int     `json:"todayOrders"`
	LowStockItems  int     `json:"lowStockItems"`
	OccupancyRate  float64 `json:"occupancyRate"`
	Revenue        float64 `json:"revenue"`
}

func (s *ReportService) Dashboard(now time.Time) DashboardStats {
	s.Store.RLock()
	defer s.Store.RUnlock()

	rooms := roomStats(s.Store.Rooms)
	bookings := bookingStats(s.Store.Bookings, now)
	billing := billingStats(s.Store.Bills)

	stats := DashboardStats{
		TotalRooms:     rooms.Total,
		AvailableRooms: rooms.Available,
		OccupiedRooms:  rooms.Occupied,
		CleaningRooms:  rooms.Cleaning,
		TodayCheckIns:  bookings.TodayCheckIns,
		TodayCheckOuts: bookings.TodayCheckOuts,
		OccupancyRate:  rooms.OccupancyRate,
		Revenue:        billing.TotalRevenue,
	}
	for _, o := range s.Store.Orders {
		if sameDay(o.OrderTime, now) {
			stats.TodayOrders++
		}
	}
	for _, i := range s.Store.Inventory {
		if i.CurrentStock <= i.MinStock {
			stats.LowStockItems++
		}
	}
	return stats
}

// RoomStatusBreakdown feeds the room status donut chart.
func (s *ReportService) RoomStatusBreakdown() map[models.RoomStatus]int {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make(map[models.RoomStatus]int)
	for _, r := range s.Store.Rooms {
		out[r.Status]++
	}
	return out
}
