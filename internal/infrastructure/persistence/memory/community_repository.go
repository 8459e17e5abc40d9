package memory

import (
	"context"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
)

type communityRepository struct {
	store *Store
}

// NewCommunityRepository creates a community repository over the
// catalog store
func NewCommunityRepository(store *Store) community.Repository {
	return &communityRepository{store: store}
}

func (r *communityRepository) FindPosts(ctx context.Context) ([]community.Post, error) {
	var out []community.Post
	r.store.View(func(d *Data) {
		out = make([]community.Post, 0, len(d.Posts))
		for _, p := range d.Posts {
			out = append(out, *p)
		}
	})
	return out, nil
}

func (r *communityRepository) FindStudyGroups(ctx context.Context) ([]community.StudyGroup, error) {
	var out []community.StudyGroup
	r.store.View(func(d *Data) {
		out = make([]community.StudyGroup, 0, len(d.StudyGroups))
		for _, g := range d.StudyGroups {
			out = append(out, *g)
		}
	})
	return out, nil
}

// CreatePost assigns len(posts)+1 as the id. Sequential-by-count only
// stays collision-free because posts are never deleted.
func (r *communityRepository) CreatePost(ctx context.Context, post community.Post) (*community.Post, error) {
	var created community.Post
	err := r.store.Update(func(d *Data) error {
		post.ID = len(d.Posts) + 1
		d.Posts = append(d.Posts, &post)
		created = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *communityRepository) CountPosts(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.Posts)
	})
	return n, nil
}

func (r *communityRepository) CountStudyGroups(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.StudyGroups)
	})
	return n, nil
}
