package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hoteldash-backend/config"
	"hoteldash-backend/controllers"
	"hoteldash-backend/routes"
	"hoteldash-backend/services"
	"hoteldash-backend/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue tokens.")
	}
	jwtSecret := []byte(secret)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	snapshots := storage.NewSnapshotStore(db)
	store, err := storage.NewStore(snapshots)
	if err != nil {
		log.Fatalf("❌ Loading persisted state failed: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(db, jwtSecret)
	roomService := services.NewRoomService(store, snapshots)
	bookingService := services.NewBookingService(store)
	housekeepingService := services.NewHousekeepingService(store, snapshots)
	diningService := services.NewDiningService(store)
	inventoryService := services.NewInventoryService(store, snapshots)
	billingService := services.NewBillingService(store)
	tripService := services.NewTripService(store)
	reportService := services.NewReportService(store)

	// Build router
	router := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Rooms:        controllers.NewRoomController(roomService),
		Bookings:     controllers.NewBookingController(bookingService),
		Housekeeping: controllers.NewHousekeepingController(housekeepingService),
		Dining:       controllers.NewDiningController(diningService),
		Inventory:    controllers.NewInventoryController(inventoryService),
		Billing:      controllers.NewBillingController(billingService),
		Trips:        controllers.NewTripController(tripService),
		Reports:      controllers.NewReportController(reportService),
	}, jwtSecret)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
