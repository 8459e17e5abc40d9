package routes

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// SearchRoutes handles the setup of cross-content search and stats routes
type SearchRoutes struct {
	handler     *handlers.SearchHandler
	rateLimiter auth.RateLimiter
}

// NewSearchRoutes creates a new SearchRoutes instance
func NewSearchRoutes(handler *handlers.SearchHandler, rateLimiter auth.RateLimiter) *SearchRoutes {
	return &SearchRoutes{
		handler:     handler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the search and stats routes
func (r *SearchRoutes) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(r.rateLimiter))
	{
		api.GET("/search", r.handler.Search)
		api.GET("/stats", r.handler.Stats)
	}
}
