package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-api/controllers"
	"hotel-reservation-api/middleware"
	"hotel-reservation-api/models"
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

// SetupRouter wires controllers onto the HTTP surface.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	cc *controllers.ContactController,
	ac *controllers.AuthController,
	anc *controllers.AnalyticsController,
	wsc *controllers.WSController,
) *gin.Engine {
	r := gin.Default()

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
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.GET("/:id/availability", rc.CheckAvailability)

			manage := rooms.Group("", middleware.RequireAuth(), middleware.RequirePermission(models.PermRoomsManage))
			{
				manage.POST("", rc.CreateRoom)
				manage.PUT("/:id", rc.UpdateRoom)
				manage.DELETE("/:id", rc.DeleteRoom)
			}
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/confirmation/:number", bc.GetBookingByConfirmation)

			view := bookings.Group("", middleware.RequireAuth(), middleware.RequirePermission(models.PermBookingsView))
			{
				view.GET("", bc.GetBookings)
				view.GET("/:ref", bc.GetBookingByReference)
			}

			manage := bookings.Group("", middleware.RequireAuth(), middleware.RequirePermission(models.PermBookingsManage))
			{
				manage.PATCH("/:ref/status", bc.UpdateBookingStatus)
				manage.PATCH("/:ref/payment", bc.UpdateBookingPayment)
				manage.PATCH("/:ref/cancel", bc.CancelBooking)
			}
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", cc.CreateContact)

			manage := contacts.Group("", middleware.RequireAuth(), middleware.RequirePermission(models.PermContactsManage))
			{
				manage.GET("", cc.GetContacts)
				manage.PATCH("/:id/status", cc.UpdateContactStatus)
				manage.POST("/:id/response", cc.RespondToContact)
				manage.DELETE("/:id", cc.DeleteContact)
			}
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", ac.Login)

			// Websocket auth happens in the handler: browsers cannot set
			// an Authorization header on the upgrade request.
			admin.GET("/ws", wsc.Connect)

			users := admin.Group("/users", middleware.RequireAuth(), middleware.RequirePermission(models.PermAdminsProvision))
			{
				users.GET("", ac.GetAdmins)
				users.POST("", ac.CreateAdmin)
			}

			analytics := admin.Group("/analytics", middleware.RequireAuth(), middleware.RequirePermission(models.PermAnalyticsView))
			{
				analytics.GET("/revenue", anc.GetRevenue)
				analytics.GET("/dashboard", anc.GetDashboard)
			}
		}
	}

	return r
}
