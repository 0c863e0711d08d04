// File: routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"entrega/handlers"
	"entrega/middleware"
)

// RegisterRoutes wires every endpoint group.
func RegisterRoutes(r *gin.Engine, ph *handlers.PreferenceHandler, nh *handlers.NotificationHandler) {
	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterPreferenceRoutes(r, ph, nh)
}

// RegisterAuthRoutes registers operator auth endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterUserHandler)
		api.POST("/login", handlers.AuthenticateUserHandler)
	}
}

// RegisterPreferenceRoutes registers the delivery-preference endpoints.
// Every route is protected; each edit maps onto one pure operation of the
// availability model.
func RegisterPreferenceRoutes(r *gin.Engine, ph *handlers.PreferenceHandler, nh *handlers.NotificationHandler) {
	api := r.Group("/api/sales/:ownerID")
	api.Use(middleware.JWTAuthMiddleware())
	{
		prefs := api.Group("/delivery-preferences")
		prefs.GET("", ph.GetPreferencesHandler)
		prefs.PUT("", ph.ReplaceAvailabilityHandler)
		prefs.PUT("/days/:day", ph.ToggleDayHandler)
		prefs.POST("/days/:day/slots", ph.AddSlotHandler)
		prefs.PATCH("/days/:day/slots/:index", ph.UpdateSlotHandler)
		prefs.DELETE("/days/:day/slots/:index", ph.RemoveSlotHandler)
		prefs.PATCH("/priority", ph.SetPriorityHandler)
		prefs.PATCH("/notes", ph.SetNotesHandler)
		prefs.POST("/reminders", ph.ScheduleReminderHandler)

		api.GET("/notifications", nh.ListNotificationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
