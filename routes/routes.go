package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lodging-backend/controllers"
	"lodging-backend/middleware"
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

func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	rtc *controllers.RoomTypeController,
) *gin.Engine {
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
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)

			// all status-like writes go through the transition endpoints
			bookings.PATCH("/:id/status", bc.UpdateStatus)
			bookings.PATCH("/:id/payment-status", bc.UpdatePaymentStatus)
			bookings.POST("/:id/checkin", bc.CheckinBooking)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}
	}

	return r
}
