package user

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	Resolve(ctx context.Context, email, name string) (*User, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Resolve returns the user for an authenticated identity, provisioning
// one on first use.
func (s *service) Resolve(ctx context.Context, email, name string) (*User, error) {
	if email == "" {
		return nil, ErrInvalidEmail
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}

	created, err := s.repo.UpsertByEmail(ctx, email, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Provisioned user on first authenticated request",
		zap.Int("user_id", created.ID),
		zap.String("email", created.Email))
	return created, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
