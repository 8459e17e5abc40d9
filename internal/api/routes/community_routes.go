package routes

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// CommunityRoutes handles the setup of community feed routes
type CommunityRoutes struct {
	handler     *handlers.CommunityHandler
	rateLimiter auth.RateLimiter
}

// NewCommunityRoutes creates a new CommunityRoutes instance
func NewCommunityRoutes(handler *handlers.CommunityHandler, rateLimiter auth.RateLimiter) *CommunityRoutes {
	return &CommunityRoutes{
		handler:     handler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers all community feed routes
func (r *CommunityRoutes) RegisterRoutes(router *gin.Engine) {
	community := router.Group("/api/community")
	community.Use(middleware.RateLimitMiddleware(r.rateLimiter))
	{
		community.GET("", r.handler.GetCommunity)
		community.GET("/posts", r.handler.ListPosts)
		community.POST("/posts", r.handler.CreatePost)
		community.GET("/study-groups", r.handler.ListStudyGroups)
	}
}
