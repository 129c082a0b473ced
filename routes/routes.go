package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mechriz/zen-fit/handlers"
	"github.com/mechriz/zen-fit/middleware"
	"github.com/mechriz/zen-fit/utils"
)

// RegisterAppRoutes registers the consumer app endpoints.
func RegisterAppRoutes(r *gin.Engine, h *handlers.AppHandler) {
	api := r.Group("/api/app")
	{
		api.GET("/user", h.GetUser)
		api.PUT("/user", h.PutUser)
		api.GET("/appointments", h.GetAppointments)
		api.PUT("/appointments", h.PutAppointments)
		api.GET("/progress", h.GetProgress)
		api.PUT("/progress", h.PutProgress)
		api.GET("/onboarded", h.GetOnboarded)
		api.PUT("/onboarded", h.PutOnboarded)

		api.GET("/onboarding", h.GetOnboardingOptions)
		api.POST("/onboarding", h.CompleteOnboarding)

		api.GET("/sessions", h.GetSessions)
		api.POST("/book", h.Book)
		api.POST("/appointments/:id/pay", h.Pay)
		api.GET("/history", h.GetHistory)
		api.GET("/history/:id", h.GetHistoryItem)

		api.GET("/dashboard", h.GetDashboard)
		api.GET("/profile", h.GetProfile)
		api.GET("/workouts", h.GetWorkouts)
		api.GET("/workouts/:id", h.GetWorkout)
		api.GET("/therapists", h.GetTherapists)
	}
}

// RegisterTherapistRoutes registers the therapist portal endpoints. Everything
// but login requires the bearer token of the current session.
func RegisterTherapistRoutes(r *gin.Engine, h *handlers.TherapistHandler) {
	api := r.Group("/api/therapist")
	{
		api.POST("/login", h.Login)

		protected := api.Group("")
		protected.Use(middleware.PortalAuthMiddleware(h.Store, h.Tokens))
		protected.POST("/logout", h.Logout)
		protected.GET("/auth", h.GetAuth)
		protected.GET("/clients", h.GetClients)
		protected.PUT("/clients", h.PutClients)
		protected.GET("/clients/:id", h.GetClient)
		protected.GET("/appointments", h.GetAppointments)
		protected.PUT("/appointments", h.PutAppointments)
		protected.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
		protected.GET("/notes", h.GetNotes)
		protected.PUT("/notes", h.PutNotes)
		protected.POST("/notes", h.AddNote)
		protected.GET("/dashboard", h.GetDashboard)
		protected.GET("/integrity", h.GetIntegrity)
	}
}

// RegisterHealthRoute registers a health-check endpoint. monitor may be nil.
func RegisterHealthRoute(r *gin.Engine, monitor *utils.HealthMonitor) {
	r.GET("/health", func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ZenFit"})
			return
		}
		status := monitor.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "services": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ZenFit", "services": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, monitor *utils.HealthMonitor) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, monitor)
	RegisterAppRoutes(r, hb.App)
	RegisterTherapistRoutes(r, hb.Therapist)
}
