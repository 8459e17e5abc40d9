package community

import "context"

// Repository is the catalog-store port for community content
type Repository interface {
	FindPosts(ctx context.Context) ([]Post, error)
	FindStudyGroups(ctx context.Context) ([]StudyGroup, error)
	// CreatePost appends a post with the next sequential id
	// (len(posts)+1) under the store lock
	CreatePost(ctx context.Context, post Post) (*Post, error)
	CountPosts(ctx context.Context) (int, error)
	CountStudyGroups(ctx context.Context) (int, error)
}
