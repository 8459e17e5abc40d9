package handlers

import (
	"net/http"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/dto"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	service community.Service
}

func NewCommunityHandler(service community.Service) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// GetCommunity godoc
// @Summary Get the whole community feed
// @Tags community
// @Produce json
// @Success 200 {object} community.Community
// @Router /api/community [get]
func (h *CommunityHandler) GetCommunity(c *gin.Context) {
	feed, err := h.service.GetCommunity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// ListPosts godoc
// @Summary List community posts
// @Tags community
// @Produce json
// @Success 200 {array} community.Post
// @Router /api/community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListStudyGroups godoc
// @Summary List study groups
// @Tags community
// @Produce json
// @Success 200 {array} community.StudyGroup
// @Router /api/community/study-groups [get]
func (h *CommunityHandler) ListStudyGroups(c *gin.Context) {
	groups, err := h.service.ListStudyGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CreatePost godoc
// @Summary Create a community post
// @Tags community
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post payload"
// @Success 200 {object} dto.CreatePostResponse
// @Router /api/community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	// Post creation never rejects: a malformed or empty body just
	// yields a post with empty fields
	_ = c.ShouldBindJSON(&req)

	post, err := h.service.CreatePost(c.Request.Context(), req.Author, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreatePostResponse{
		Success: true,
		Post:    *post,
	})
}
