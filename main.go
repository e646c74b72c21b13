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

	"hotel-reservation-api/config"
	"hotel-reservation-api/controllers"
	"hotel-reservation-api/realtime"
	"hotel-reservation-api/routes"
	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Notification relay for the admin dashboard, injected into the
	// booking engine rather than looked up globally.
	hub := realtime.NewHub()

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db, hub, services.PricingFromEnv())
	contactService := services.NewContactService(db)
	adminService := services.NewAdminService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	contactController := controllers.NewContactController(contactService)
	authController := controllers.NewAuthController(adminService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	wsController := controllers.NewWSController(hub)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		contactController,
		authController,
		analyticsController,
		wsController,
	)

	// Periodic cleanup of old closed inquiries
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runContactCleanup(cleanupCtx, contactService)

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

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")
	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

// runContactCleanup purges closed inquiries past their retention window
// once a day. Idempotent; losing a tick is harmless.
func runContactCleanup(ctx context.Context, contacts *services.ContactService) {
	retention := time.Duration(utils.EnvInt("CONTACT_RETENTION_DAYS", 90)) * 24 * time.Hour

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := contacts.PurgeClosed(retention)
			if err != nil {
				log.Printf("warning: contact cleanup failed: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("🧹 purged %d closed contact(s)", purged)
			}
		}
	}
}
