package routes

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// EventsRoutes handles the setup of event-related routes
type EventsRoutes struct {
	handler     *handlers.EventsHandler
	jwtSecret   string
	rateLimiter auth.RateLimiter
}

// NewEventsRoutes creates a new EventsRoutes instance
func NewEventsRoutes(handler *handlers.EventsHandler, jwtSecret string, rateLimiter auth.RateLimiter) *EventsRoutes {
	return &EventsRoutes{
		handler:     handler,
		jwtSecret:   jwtSecret,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers all event-related routes
func (r *EventsRoutes) RegisterRoutes(router *gin.Engine) {
	events := router.Group("/api/events")
	events.Use(middleware.RateLimitMiddleware(r.rateLimiter))
	{
		// Public catalog reads
		events.GET("", r.handler.ListEvents)
		events.GET("/:id", r.handler.GetEvent)
		events.GET("/:id/match", r.handler.MatchEvent)

		// Caller-scoped routes behind bearer auth
		protected := events.Group("")
		protected.Use(middleware.NewAuthMiddleware(r.jwtSecret))
		{
			protected.GET("/my", r.handler.MyEvents)
			protected.POST("/:id/register", r.handler.RegisterEvent)
		}
	}

	// Legacy aliases kept for the original events.html client
	router.GET("/events", r.handler.ListEventsLegacy)
	router.GET("/events/:id", r.handler.GetEvent)
}
