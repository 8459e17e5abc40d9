package dto

import "github.com/SIDDARDHA2006/OpporLink/internal/domain/community"

// CreatePostRequest is the body for POST /api/community/posts
type CreatePostRequest struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePostResponse wraps the created post
type CreatePostResponse struct {
	Success bool           `json:"success"`
	Post    community.Post `json:"post"`
}
