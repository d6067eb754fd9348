package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hoteldash-backend/controllers"
	"hoteldash-backend/middleware"
	"hoteldash-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Rooms        *controllers.RoomController
	Bookings     *controllers.BookingController
	Housekeeping *controllers.HousekeepingController
	Dining       *controllers.DiningController
	Inventory    *controllers.InventoryController
	Billing      *controllers.BillingController
	Trips        *controllers.TripController
	Reports      *controllers.ReportController
}

func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/register", ctrl.Auth.Register)
			auth.GET("/me", middleware.RequireAuth(jwtSecret), ctrl.Auth.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(jwtSecret))

		rooms := protected.Group("/rooms")
		rooms.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist, models.RoleHousekeeping))
		{
			rooms.GET("", ctrl.Rooms.GetRooms)
			rooms.GET("/stats", ctrl.Rooms.GetRoomStats)
			rooms.POST("", ctrl.Rooms.CreateRoom)
			rooms.PUT("/:id", ctrl.Rooms.UpdateRoom)
			rooms.DELETE("/:id", ctrl.Rooms.DeleteRoom)
			rooms.PATCH("/:id/status", ctrl.Rooms.UpdateRoomStatus)
		}

		bookings := protected.Group("/bookings")
		bookings.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist))
		{
			bookings.GET("", ctrl.Bookings.GetBookings)
			bookings.GET("/stats", ctrl.Bookings.GetBookingStats)
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.DELETE("/:id", ctrl.Bookings.DeleteBooking)
			bookings.PATCH("/:id/status", ctrl.Bookings.TransitionBooking)
		}

		housekeeping := protected.Group("/housekeeping")
		housekeeping.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleHousekeeping))
		{
			housekeeping.GET("/tasks", ctrl.Housekeeping.GetTasks)
			housekeeping.GET("/tasks/stats", ctrl.Housekeeping.GetTaskStats)
			housekeeping.GET("/staff", ctrl.Housekeeping.GetStaffBreakdown)
			housekeeping.POST("/tasks", ctrl.Housekeeping.CreateTask)
			housekeeping.DELETE("/tasks/:id", ctrl.Housekeeping.DeleteTask)
			housekeeping.PATCH("/tasks/:id/status", ctrl.Housekeeping.TransitionTask)
		}

		dining := protected.Group("/dining")
		dining.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleKitchen, models.RoleReceptionist))
		{
			dining.GET("/menu", ctrl.Dining.GetMenu)
			dining.GET("/menu/stats", ctrl.Dining.GetMenuStats)
			dining.POST("/menu", ctrl.Dining.CreateMenuItem)
			dining.PUT("/menu/:id", ctrl.Dining.UpdateMenuItem)
			dining.DELETE("/menu/:id", ctrl.Dining.DeleteMenuItem)
			dining.PATCH("/menu/:id/availability", ctrl.Dining.ToggleMenuItem)

			dining.GET("/orders", ctrl.Dining.GetOrders)
			dining.GET("/orders/stats", ctrl.Dining.GetOrderStats)
			dining.POST("/orders", ctrl.Dining.CreateOrder)
			dining.POST("/orders/:id/advance", ctrl.Dining.AdvanceOrder)
			dining.PATCH("/orders/:id/status", ctrl.Dining.SetOrderStatus)
			dining.POST("/orders/:id/cancel", ctrl.Dining.CancelOrder)
		}

		inventory := protected.Group("/inventory")
		inventory.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleKitchen))
		{
			inventory.GET("", ctrl.Inventory.GetItems)
			inventory.GET("/stats", ctrl.Inventory.GetStats)
			inventory.POST("", ctrl.Inventory.CreateItem)
			inventory.PUT("/:id", ctrl.Inventory.UpdateItem)
			inventory.DELETE("/:id", ctrl.Inventory.DeleteItem)
			inventory.PATCH("/:id/stock", ctrl.Inventory.AdjustStock)
			inventory.POST("/:id/restock", ctrl.Inventory.Restock)
		}

		billing := protected.Group("/billing")
		billing.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist))
		{
			billing.GET("", ctrl.Billing.GetBills)
			billing.GET("/stats", ctrl.Billing.GetStats)
			billing.POST("", ctrl.Billing.CreateBill)
			billing.POST("/:id/pay", ctrl.Billing.MarkPaid)
			billing.POST("/:id/cancel", ctrl.Billing.CancelBill)
		}

		trips := protected.Group("/trips")
		trips.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist, models.RoleCustomer))
		{
			trips.GET("/packages", ctrl.Trips.GetPackages)
			trips.GET("/stats", ctrl.Trips.GetStats)
			trips.POST("/packages", ctrl.Trips.CreatePackage)
			trips.PUT("/packages/:id", ctrl.Trips.UpdatePackage)
			trips.DELETE("/packages/:id", ctrl.Trips.DeletePackage)
			trips.PATCH("/packages/:id/active", ctrl.Trips.TogglePackage)

			trips.GET("/bookings", ctrl.Trips.GetBookings)
			trips.POST("/bookings", ctrl.Trips.CreateBooking)
			trips.PATCH("/bookings/:id/status", ctrl.Trips.TransitionBooking)
		}

		reports := protected.Group("/reports")
		reports.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			reports.GET("/dashboard", ctrl.Reports.GetDashboard)
			reports.GET("/rooms", ctrl.Reports.GetRoomBreakdown)
		}
	}

	return r
}
