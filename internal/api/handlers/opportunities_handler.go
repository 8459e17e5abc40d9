package handlers

import (
	"net/http"
	"strconv"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/dto"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/gin-gonic/gin"
)

type OpportunitiesHandler struct {
	service opportunities.Service
}

func NewOpportunitiesHandler(service opportunities.Service) *OpportunitiesHandler {
	return &OpportunitiesHandler{service: service}
}

// ListOpportunities godoc
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Param category query string false "Category filter"
// @Param company query string false "Company filter"
// @Param search query string false "Substring match on title, company or skills"
// @Param limit query int false "Truncate to the first N results"
// @Success 200 {array} opportunities.Opportunity
// @Router /api/opportunities [get]
func (h *OpportunitiesHandler) ListOpportunities(c *gin.Context) {
	filter := opportunities.Filter{
		Category: c.Query("category"),
		Company:  c.Query("company"),
		Search:   c.Query("search"),
		Limit:    parseLimit(c.Query("limit")),
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetOpportunity godoc
// @Summary Get an opportunity by ID
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} opportunities.Opportunity
// @Failure 404 {object} map[string]string "Opportunity not found"
// @Router /api/opportunities/{id} [get]
func (h *OpportunitiesHandler) GetOpportunity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	opp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	c.JSON(http.StatusOK, opp)
}

// ApplyOpportunity godoc
// @Summary Apply to an opportunity
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.ApplyOpportunityResponse
// @Failure 404 {object} map[string]string "Opportunity not found"
// @Router /api/opportunities/{id}/apply [post]
func (h *OpportunitiesHandler) ApplyOpportunity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	opp, err := h.service.Apply(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ApplyOpportunityResponse{
		Success:     true,
		Message:     "Application submitted!",
		Opportunity: *opp,
	})
}
