package community

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Service interface {
	GetCommunity(ctx context.Context) (*Community, error)
	ListPosts(ctx context.Context) ([]Post, error)
	ListStudyGroups(ctx context.Context) ([]StudyGroup, error)
	// CreatePost appends a post; it always succeeds for a live store.
	// Counters start at zero and the date is the creation day.
	CreatePost(ctx context.Context, author, title, content string) (*Post, error)
	CountPosts(ctx context.Context) (int, error)
	CountStudyGroups(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	logger *logrus.Logger
}

func NewService(repo Repository, logger *logrus.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetCommunity(ctx context.Context) (*Community, error) {
	posts, err := s.repo.FindPosts(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.repo.FindStudyGroups(ctx)
	if err != nil {
		return nil, err
	}
	return &Community{Posts: posts, StudyGroups: groups}, nil
}

func (s *service) ListPosts(ctx context.Context) ([]Post, error) {
	return s.repo.FindPosts(ctx)
}

func (s *service) ListStudyGroups(ctx context.Context) ([]StudyGroup, error) {
	return s.repo.FindStudyGroups(ctx)
}

func (s *service) CreatePost(ctx context.Context, author, title, content string) (*Post, error) {
	post := Post{
		Author:   author,
		Title:    title,
		Content:  content,
		Likes:    0,
		Comments: 0,
		Date:     time.Now().Format("2006-01-02"),
	}

	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"post_id": created.ID,
		"author":  created.Author,
	}).Info("community post created")

	return created, nil
}

func (s *service) CountPosts(ctx context.Context) (int, error) {
	return s.repo.CountPosts(ctx)
}

func (s *service) CountStudyGroups(ctx context.Context) (int, error) {
	return s.repo.CountStudyGroups(ctx)
}
