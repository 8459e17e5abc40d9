package opportunities

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]Opportunity, error)
	Get(ctx context.Context, id int) (*Opportunity, error)
	// Apply records an application. There is no duplicate or capacity
	// guard here: applicants is a plain counter, openings stays
	// informational.
	Apply(ctx context.Context, id int) (*Opportunity, error)
	// Search backs the cross-content /api/search endpoint
	Search(ctx context.Context, query string) ([]Opportunity, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Opportunity, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(all, filter), nil
}

func (s *service) Get(ctx context.Context, id int) (*Opportunity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Apply(ctx context.Context, id int) (*Opportunity, error) {
	updated, err := s.repo.IncrementApplicants(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Application submitted",
		zap.Int("opportunity_id", updated.ID),
		zap.Int("applicants", updated.Applicants))
	return updated, nil
}

func (s *service) Search(ctx context.Context, query string) ([]Opportunity, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]Opportunity, 0)
	for _, o := range all {
		if matchesSearch(o, q) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
