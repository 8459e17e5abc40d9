package routes

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// OpportunitiesRoutes handles the setup of opportunity-related routes
type OpportunitiesRoutes struct {
	handler     *handlers.OpportunitiesHandler
	rateLimiter auth.RateLimiter
}

// NewOpportunitiesRoutes creates a new OpportunitiesRoutes instance
func NewOpportunitiesRoutes(handler *handlers.OpportunitiesHandler, rateLimiter auth.RateLimiter) *OpportunitiesRoutes {
	return &OpportunitiesRoutes{
		handler:     handler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers all opportunity-related routes. Applying is
// deliberately open: the applicant counter is informational and the
// legacy client calls it without credentials.
func (r *OpportunitiesRoutes) RegisterRoutes(router *gin.Engine) {
	opportunities := router.Group("/api/opportunities")
	opportunities.Use(middleware.RateLimitMiddleware(r.rateLimiter))
	{
		opportunities.GET("", r.handler.ListOpportunities)
		opportunities.GET("/:id", r.handler.GetOpportunity)
		opportunities.POST("/:id/apply", r.handler.ApplyOpportunity)
	}
}
