package skills

import (
	"context"
	"strings"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]Skill, error)
	Get(ctx context.Context, id int) (*Skill, error)
	// Search backs the cross-content /api/search endpoint
	Search(ctx context.Context, query string) ([]Skill, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Skill, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(all, filter), nil
}

func (s *service) Get(ctx context.Context, id int) (*Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Search(ctx context.Context, query string) ([]Skill, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]Skill, 0)
	for _, sk := range all {
		if matchesSearch(sk, q) {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
