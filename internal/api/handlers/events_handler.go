package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/dto"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	service events.Service
}

func NewEventsHandler(service events.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

// ListEvents godoc
// @Summary List events
// @Description Get all events, narrowed by tab/category/mode/domain/level/deadline/search/limit
// @Tags events
// @Produce json
// @Param tab query string false "Tab filter (All, Workshops, Internships, Skills)"
// @Param category query string false "Category filter"
// @Param mode query string false "Mode filter (online, offline, hybrid)"
// @Param domain query string false "Domain filter"
// @Param level query string false "Difficulty filter"
// @Param deadline query string false "Deadline window (this_week, this_month, upcoming)"
// @Param search query string false "Substring match on title or organizer"
// @Param limit query int false "Truncate to the first N results"
// @Success 200 {array} events.Event
// @Router /api/events [get]
func (h *EventsHandler) ListEvents(c *gin.Context) {
	filter := events.Filter{
		Tab:      c.Query("tab"),
		Category: c.Query("category"),
		Mode:     c.Query("mode"),
		Domain:   c.Query("domain"),
		Level:    c.Query("level"),
		Deadline: c.Query("deadline"),
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

// ListEventsLegacy serves the /events alias kept for the events.html
// client; it only understands the exact-match filters and search.
func (h *EventsHandler) ListEventsLegacy(c *gin.Context) {
	filter := events.Filter{
		Category: c.Query("category"),
		Mode:     c.Query("mode"),
		Domain:   c.Query("domain"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} events.Event
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id} [get]
func (h *EventsHandler) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id cannot resolve to anything
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// MyEvents godoc
// @Summary List the caller's registered events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param mode query string false "Mode filter"
// @Param domain query string false "Domain filter"
// @Param level query string false "Difficulty filter"
// @Param deadline query string false "Deadline window"
// @Param search query string false "Substring match on title or organizer"
// @Success 200 {array} events.Event
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/events/my [get]
func (h *EventsHandler) MyEvents(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	filter := events.Filter{
		Category: c.Query("category"),
		Mode:     c.Query("mode"),
		Domain:   c.Query("domain"),
		Level:    c.Query("level"),
		Deadline: c.Query("deadline"),
		Search:   c.Query("search"),
	}

	list, err := h.service.ListRegistered(c.Request.Context(), identity.Email, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// MatchEvent godoc
// @Summary Rank users by skill compatibility with an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} events.MatchResult
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id}/match [get]
func (h *EventsHandler) MatchEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	result, err := h.service.Match(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterEvent godoc
// @Summary Register the caller for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.RegisterEventResponse
// @Failure 400 {object} map[string]string "Already registered / event full"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id}/register [post]
func (h *EventsHandler) RegisterEvent(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	updated, err := h.service.Register(c.Request.Context(), id, events.Identity{
		Email: identity.Email,
		Name:  identity.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, events.ErrAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already registered for this event"})
		case errors.Is(err, events.ErrEventFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event is full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RegisterEventResponse{
		Success: true,
		Message: "Successfully registered!",
		Event:   *updated,
	})
}

// parseLimit treats anything that does not parse as "no limit"
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
