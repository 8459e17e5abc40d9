package handlers

import (
	"net/http"
	"strconv"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/gin-gonic/gin"
)

type SkillsHandler struct {
	service skills.Service
}

func NewSkillsHandler(service skills.Service) *SkillsHandler {
	return &SkillsHandler{service: service}
}

// ListSkills godoc
// @Summary List skill tracks
// @Tags skills
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Substring match on name or description"
// @Param limit query int false "Truncate to the first N results"
// @Success 200 {array} skills.Skill
// @Router /api/skills [get]
func (h *SkillsHandler) ListSkills(c *gin.Context) {
	filter := skills.Filter{
		Category: c.Query("category"),
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

// GetSkill godoc
// @Summary Get a skill track by ID
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} skills.Skill
// @Failure 404 {object} map[string]string "Skill not found"
// @Router /api/skills/{id} [get]
func (h *SkillsHandler) GetSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	skill, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, skill)
}
