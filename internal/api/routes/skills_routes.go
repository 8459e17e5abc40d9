package routes

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// SkillsRoutes handles the setup of skill-track routes
type SkillsRoutes struct {
	handler     *handlers.SkillsHandler
	rateLimiter auth.RateLimiter
}

// NewSkillsRoutes creates a new SkillsRoutes instance
func NewSkillsRoutes(handler *handlers.SkillsHandler, rateLimiter auth.RateLimiter) *SkillsRoutes {
	return &SkillsRoutes{
		handler:     handler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers all skill-track routes
func (r *SkillsRoutes) RegisterRoutes(router *gin.Engine) {
	skills := router.Group("/api/skills")
	skills.Use(middleware.RateLimitMiddleware(r.rateLimiter))
	{
		skills.GET("", r.handler.ListSkills)
		skills.GET("/:id", r.handler.GetSkill)
	}
}
