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

	"lodging-backend/config"
	"lodging-backend/controllers"
	"lodging-backend/routes"
	"lodging-backend/services"
	"lodging-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established, migrations applied")

	// Whether a pending (unpaid) booking places a tentative hold on its room.
	holdRoomOnPending := utils.EnvBool("HOLD_ROOM_ON_PENDING", true)

	var notifier services.Notifier
	if os.Getenv("SMTP_HOST") != "" {
		notifier = services.NewEmailNotifier()
	} else {
		notifier = services.NewConsoleNotifier()
	}

	gateway := services.NewGormGateway(db)
	transitionSvc := services.NewTransitionService(gateway, notifier, holdRoomOnPending)
	bookingSvc := services.NewBookingService(db, transitionSvc.BookingMachine(), notifier)
	roomSvc := services.NewRoomService(db)
	guestSvc := services.NewGuestService(db)
	roomTypeSvc := services.NewRoomTypeService(db)

	bookingController := controllers.NewBookingController(bookingSvc, transitionSvc)
	roomController := controllers.NewRoomController(roomSvc, transitionSvc)
	guestController := controllers.NewGuestController(guestSvc)
	roomTypeController := controllers.NewRoomTypeController(roomTypeSvc)

	router := routes.SetupRouter(bookingController, roomController, guestController, roomTypeController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
