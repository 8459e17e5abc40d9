package handlers

import (
	"net/http"
	"strings"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/dto"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// SearchHandler fans a query out across every catalog collection.
type SearchHandler struct {
	events        events.Service
	opportunities opportunities.Service
	skills        skills.Service
	users         user.Service
	community     community.Service
}

func NewSearchHandler(
	eventsSvc events.Service,
	opportunitiesSvc opportunities.Service,
	skillsSvc skills.Service,
	usersSvc user.Service,
	communitySvc community.Service,
) *SearchHandler {
	return &SearchHandler{
		events:        eventsSvc,
		opportunities: opportunitiesSvc,
		skills:        skillsSvc,
		users:         usersSvc,
		community:     communitySvc,
	}
}

// Search godoc
// @Summary Search events, opportunities and skills at once
// @Tags search
// @Produce json
// @Param query query string false "Query string"
// @Success 200 {object} dto.SearchResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, dto.SearchResponse{
			Events:        []events.Event{},
			Opportunities: []opportunities.Opportunity{},
			Skills:        []skills.Skill{},
		})
		return
	}

	ctx := c.Request.Context()

	matchedEvents, err := h.events.Search(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matchedOpportunities, err := h.opportunities.Search(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matchedSkills, err := h.skills.Search(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Events:        matchedEvents,
		Opportunities: matchedOpportunities,
		Skills:        matchedSkills,
	})
}

// Stats godoc
// @Summary Report the size of every catalog collection
// @Tags search
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/stats [get]
func (h *SearchHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	totalEvents, err := h.events.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalOpportunities, err := h.opportunities.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalSkills, err := h.skills.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalUsers, err := h.users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalPosts, err := h.community.CountPosts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalGroups, err := h.community.CountStudyGroups(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalEvents:         totalEvents,
		TotalOpportunities:  totalOpportunities,
		TotalSkills:         totalSkills,
		TotalUsers:          totalUsers,
		TotalCommunityPosts: totalPosts,
		TotalStudyGroups:    totalGroups,
	})
}
