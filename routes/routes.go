package routes

import (
	"net/http"
	"time"

	"roomify/handlers"
	"roomify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AdminLoginHandler)
	}
}

// RegisterRoomRoutes registers room endpoints. Listing is public; mutation is
// admin-only.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("", hb.CreateRoomHandler)
		admin.PUT("/:id", hb.UpdateRoomHandler)
		admin.DELETE("/:id", hb.DeleteRoomHandler)
	}
}

// RegisterReservationRoutes registers the reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.GET("", hb.ListReservationsHandler)
		api.POST("", hb.CreateReservationHandler)
		api.DELETE("/:id", hb.DeleteReservationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
