package storage

import (
	"log"
	"time"

	"hoteldash-backend/models"
)

func mustParseTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		log.Fatalf("Error parsing time for seeding (%s): %v", value, err)
	}
	return t
}

func day(value string) time.Time {
	return mustParseTime("2006-01-02", value)
}

func at(value string) time.Time {
	return mustParseTime("2006-01-02T15:04:05", value)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

// SeedRooms returns the bundled sample rooms. Every Seed* function hands out
// a fresh slice so callers can mutate freely.
func SeedRooms() []models.Room {
	return []models.Room{
		{
			ID: "1", Number: "101", Type: models.RoomTypeSingle, Status: models.RoomAvailable,
			Rate: 120, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar"},
			MaxOccupancy: 1, Floor: 1, LastCleaned: datePtr(day("2024-01-14")),
		},
		{
			ID: "2", Number: "102", Type: models.RoomTypeDouble, Status: models.RoomOccupied,
			Rate: 180, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar", "Balcony"},
			MaxOccupancy: 2, Floor: 1, LastCleaned: datePtr(day("2024-01-13")),
		},
		{
			ID: "3", Number: "201", Type: models.RoomTypeSuite, Status: models.RoomReserved,
			Rate: 300, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar", "Balcony", "Jacuzzi"},
			MaxOccupancy: 4, Floor: 2, LastCleaned: datePtr(day("2024-01-12")),
		},
		{
			ID: "4", Number: "202", Type: models.RoomTypeFamily, Status: models.RoomCleaning,
			Rate: 250, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar", "Kitchenette"},
			MaxOccupancy: 4, Floor: 2, NeedsCleaning: true,
			CleaningNotes: "Deep cleaning required - guest checked out late",
			LastCleaned:   datePtr(day("2024-01-10")),
		},
		{
			ID: "5", Number: "301", Type: models.RoomTypeDouble, Status: models.RoomMaintenance,
			Rate: 180, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar"},
			MaxOccupancy: 2, Floor: 3, LastCleaned: datePtr(day("2024-01-11")),
		},
	}
}

func SeedGuests() []models.Guest {
	return []models.Guest{
		{
			ID: "1", Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-0123",
			Nationality: "US", Preferences: []string{"Non-smoking", "High floor"},
			BookingHistory: []string{"1", "2"},
		},
		{
			ID: "2", Name: "Maria Garcia", Email: "maria.garcia@email.com", Phone: "+1-555-0456",
			Nationality: "ES", Preferences: []string{"Vegetarian meals"},
			BookingHistory: []string{"3"},
		},
	}
}

func SeedBookings() []models.Booking {
	return []models.Booking{
		{
			ID: "1", GuestID: "1", RoomID: "2",
			CheckIn: day("2024-01-15"), CheckOut: day("2024-01-18"),
			Status: models.BookingCheckedIn, Package: models.PackageBedBreakfast,
			Source: models.SourceBookingCom, TotalAmount: 540,
			Notes: "Anniversary celebration", CreatedAt: day("2024-01-10"),
		},
		{
			ID: "2", GuestID: "2", RoomID: "3",
			CheckIn: day("2024-01-20"), CheckOut: day("2024-01-25"),
			Status: models.BookingConfirmed, Package: models.PackageFullBoard,
			Source: models.SourceDirect, TotalAmount: 1500,
			Notes: "Business trip", CreatedAt: day("2024-01-12"),
		},
	}
}

func SeedHousekeepingTasks() []models.HousekeepingTask {
	return []models.HousekeepingTask{
		{
			ID: "1", RoomID: "4", StaffID: "staff-1", Status: models.TaskInProgress,
			Type: models.TaskCleaning, Priority: models.PriorityHigh,
			AssignedAt: at("2024-01-15T09:00:00"),
			Notes:      "Deep cleaning required - guest checked out late",
		},
		{
			ID: "2", RoomID: "2", StaffID: "staff-2", Status: models.TaskPending,
			Type: models.TaskCleaning, Priority: models.PriorityMedium,
			AssignedAt: at("2024-01-15T10:00:00"),
			Notes:      "Standard cleaning - check-in at 3 PM",
		},
		{
			ID: "3", RoomID: "1", StaffID: "staff-1", Status: models.TaskCompleted,
			Type: models.TaskCleaning, Priority: models.PriorityLow,
			AssignedAt:  at("2024-01-15T08:00:00"),
			CompletedAt: datePtr(at("2024-01-15T09:30:00")),
			Notes:       "Quick turnover cleaning",
		},
		{
			ID: "4", RoomID: "5", StaffID: "staff-3", Status: models.TaskPending,
			Type: models.TaskMaintenance, Priority: models.PriorityHigh,
			AssignedAt: at("2024-01-15T11:00:00"),
			Notes:      "AC not working - guest complaint",
		},
		{
			ID: "5", RoomID: "3", StaffID: "staff-2", Status: models.TaskPending,
			Type: models.TaskInspection, Priority: models.PriorityMedium,
			AssignedAt: at("2024-01-15T12:00:00"),
			Notes:      "Pre-check-in inspection for VIP guest",
		},
	}
}

func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "1", Name: "Continental Breakfast",
			Description: "Fresh pastries, fruits, coffee, and juice",
			Price:       15, Category: models.CategoryBreakfast, Available: true,
			Ingredients: []string{"Pastries", "Fruits", "Coffee", "Juice"},
		},
		{
			ID: "2", Name: "Grilled Salmon",
			Description: "Fresh Atlantic salmon with herbs and lemon",
			Price:       28, Category: models.CategoryDinner, Available: true,
			Ingredients: []string{"Salmon", "Herbs", "Lemon", "Olive Oil"},
		},
	}
}

func SeedOrders() []models.Order {
	return []models.Order{
		{
			ID: "1", RoomID: "2",
			Items: []models.OrderItem{
				{MenuItemID: "1", Quantity: 2},
				{MenuItemID: "2", Quantity: 1},
			},
			Status: models.OrderPreparing, TotalAmount: 58,
			OrderTime: at("2024-01-15T08:30:00"), Notes: "Room service",
		},
	}
}

func SeedInventoryItems() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID: "1", Name: "Coffee Beans", Category: models.InventoryFood,
			CurrentStock: 5, MinStock: 10, MaxStock: 50, Unit: "kg", Cost: 15,
			Supplier: "Coffee Supply Co.", LastRestocked: datePtr(day("2024-01-10")),
		},
		{
			ID: "2", Name: "Towels", Category: models.InventoryAmenities,
			CurrentStock: 25, MinStock: 30, MaxStock: 100, Unit: "pieces", Cost: 8,
			Supplier: "Hotel Supplies Inc.", LastRestocked: datePtr(day("2024-01-12")),
		},
		{
			ID: "3", Name: "Bath Soap", Category: models.InventoryAmenities,
			CurrentStock: 8, MinStock: 20, MaxStock: 80, Unit: "pieces", Cost: 2.5,
			Supplier: "Hotel Supplies Inc.", LastRestocked: datePtr(day("2024-01-08")),
		},
		{
			ID: "4", Name: "Toilet Paper", Category: models.InventoryAmenities,
			CurrentStock: 12, MinStock: 25, MaxStock: 100, Unit: "rolls", Cost: 1.2,
			Supplier: "Hotel Supplies Inc.", LastRestocked: datePtr(day("2024-01-05")),
		},
		{
			ID: "5", Name: "Cleaning Spray", Category: models.InventoryCleaning,
			CurrentStock: 3, MinStock: 8, MaxStock: 30, Unit: "bottles", Cost: 4.5,
			Supplier: "Cleaning Solutions Ltd.", LastRestocked: datePtr(day("2024-01-03")),
		},
		{
			ID: "6", Name: "Fresh Milk", Category: models.InventoryFood,
			CurrentStock: 15, MinStock: 20, MaxStock: 50, Unit: "liters", Cost: 3.2,
			Supplier: "Dairy Fresh Co.", LastRestocked: datePtr(day("2024-01-14")),
		},
		{
			ID: "7", Name: "Bread", Category: models.InventoryFood,
			CurrentStock: 6, MinStock: 10, MaxStock: 25, Unit: "loaves", Cost: 2.8,
			Supplier: "Bakery Direct", LastRestocked: datePtr(day("2024-01-14")),
		},
		{
			ID: "8", Name: "Orange Juice", Category: models.InventoryBeverage,
			CurrentStock: 4, MinStock: 12, MaxStock: 40, Unit: "liters", Cost: 5.5,
			Supplier: "Beverage Co.", LastRestocked: datePtr(day("2024-01-11")),
		},
	}
}

func SeedBills() []models.Bill {
	return []models.Bill{
		{
			ID: "1", BookingID: "1", GuestID: "1",
			Items: []models.BillItem{
				{Description: "Room 102 (3 nights)", Quantity: 3, Rate: 180, Amount: 540, Category: "room"},
				{Description: "Breakfast package", Quantity: 3, Rate: 15, Amount: 45, Category: "meal"},
			},
			Subtotal: 585, Tax: 58.5, Total: 643.5,
			Status: models.BillPending, CreatedAt: day("2024-01-15"),
		},
	}
}

func SeedTripPackages() []models.TripPackage {
	return []models.TripPackage{
		{
			ID: "1", Name: "City Heritage Tour",
			Description: "Explore the rich history and culture of our beautiful city with a guided tour through historic landmarks, museums, and local markets.",
			Destination: "Historic City Center", Duration: 1, Price: 75, MaxParticipants: 15,
			Includes:   []string{"Professional guide", "Entrance fees", "Transportation", "Lunch"},
			Highlights: []string{"Ancient Cathedral", "Historic Market", "Museum of Art", "Local Crafts"},
			Vehicle:    models.Vehicle{Type: models.VehicleBus, Capacity: 15, Name: "Comfort Bus"},
			PriceRanges: []models.PriceRange{
				{Min: 50, Max: 75, Description: "Standard Package"},
				{Min: 75, Max: 100, Description: "Premium Package with Lunch"},
				{Min: 100, Max: 150, Description: "VIP Package with Private Guide"},
			},
			IsActive: true,
			Images:   []string{"/images/city-tour-1.jpg", "/images/city-tour-2.jpg"},
			CreatedAt: day("2024-01-01"), UpdatedAt: day("2024-01-15"),
		},
		{
			ID: "2", Name: "Mountain Adventure",
			Description: "Experience breathtaking mountain views and fresh air with our guided hiking tour through scenic trails and natural wonders.",
			Destination: "Blue Mountain Range", Duration: 2, Price: 120, MaxParticipants: 8,
			Includes:   []string{"Expert guide", "Hiking equipment", "Mountain lunch", "Photography session"},
			Highlights: []string{"Summit Viewpoint", "Waterfall Trail", "Wildlife Spotting", "Sunset Photography"},
			Vehicle:    models.Vehicle{Type: models.VehicleVan, Capacity: 8, Name: "Adventure Van"},
			PriceRanges: []models.PriceRange{
				{Min: 80, Max: 120, Description: "Day Trip Package"},
				{Min: 120, Max: 180, Description: "Overnight Package"},
				{Min: 180, Max: 250, Description: "Luxury Mountain Lodge Package"},
			},
			IsActive: true,
			Images:   []string{"/images/mountain-1.jpg", "/images/mountain-2.jpg"},
			CreatedAt: day("2024-01-01"), UpdatedAt: day("2024-01-15"),
		},
		{
			ID: "3", Name: "Coastal Paradise",
			Description: "Relax and unwind at pristine beaches with crystal clear waters, perfect for swimming, snorkeling, and beach activities.",
			Destination: "Golden Coast", Duration: 1, Price: 90, MaxParticipants: 12,
			Includes:   []string{"Beach equipment", "Snorkeling gear", "Beach lunch", "Water activities"},
			Highlights: []string{"Private Beach Access", "Snorkeling Spots", "Beach Volleyball", "Sunset Views"},
			Vehicle:    models.Vehicle{Type: models.VehicleLuxuryCar, Capacity: 4, Name: "Luxury Sedan"},
			PriceRanges: []models.PriceRange{
				{Min: 60, Max: 90, Description: "Beach Day Package"},
				{Min: 90, Max: 130, Description: "Water Sports Package"},
				{Min: 130, Max: 200, Description: "Private Beach Experience"},
			},
			IsActive: true,
			Images:   []string{"/images/beach-1.jpg", "/images/beach-2.jpg"},
			CreatedAt: day("2024-01-01"), UpdatedAt: day("2024-01-15"),
		},
	}
}

func SeedTripBookings() []models.TripBooking {
	return []models.TripBooking{
		{
			ID: "1", PackageID: "1", GuestID: "1",
			BookingDate: day("2024-01-15"), TripDate: day("2024-01-20"),
			Participants: 2, TotalPrice: 150, Status: models.TripConfirmed,
			SpecialRequests: "Vegetarian lunch please", VehiclePreference: "bus",
			CreatedAt: day("2024-01-15"),
		},
		{
			ID: "2", PackageID: "2", GuestID: "2",
			BookingDate: day("2024-01-16"), TripDate: day("2024-01-22"),
			Participants: 4, TotalPrice: 480, Status: models.TripPending,
			CreatedAt: day("2024-01-16"),
		},
	}
}
