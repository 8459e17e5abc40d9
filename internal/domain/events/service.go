package events

import (
	"context"
	"strings"
	"time"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]Event, error)
	Get(ctx context.Context, id int) (*Event, error)
	// ListRegistered lists the caller's registered events, narrowed by
	// the same filter set as List. An unknown caller simply has none.
	ListRegistered(ctx context.Context, email string, filter Filter) ([]Event, error)
	// Match scores all users against the event's required skills
	Match(ctx context.Context, eventID int) (*MatchResult, error)
	// Register books a spot for an authenticated identity, provisioning
	// the user record on first use
	Register(ctx context.Context, eventID int, identity Identity) (*Event, error)
	// Search backs the cross-content /api/search endpoint
	Search(ctx context.Context, query string) ([]Event, error)
	Count(ctx context.Context) (int, error)
}

// Identity is the authenticated caller as the transport layer resolved
// it. Email is the natural key, Name is a display-name hint.
type Identity struct {
	Email string
	Name  string
}

type service struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, logger *zap.Logger) Service {
	return &service{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Event, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(all, filter, time.Now()), nil
}

func (s *service) Get(ctx context.Context, id int) (*Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListRegistered(ctx context.Context, email string, filter Filter) ([]Event, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// No user record yet means no registrations, not an error
		return []Event{}, nil
	}

	registered := make(map[int]bool, len(u.RegisteredEvents))
	for _, id := range u.RegisteredEvents {
		registered[id] = true
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]Event, 0, len(registered))
	for _, e := range all {
		if registered[e.ID] {
			mine = append(mine, e)
		}
	}

	// The my-events view never tab-filters; everything else applies
	filter.Tab = ""
	return ApplyFilter(mine, filter, time.Now()), nil
}

func (s *service) Match(ctx context.Context, eventID int) (*MatchResult, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := MatchUsers(event, users)
	return &result, nil
}

func (s *service) Register(ctx context.Context, eventID int, identity Identity) (*Event, error) {
	if identity.Email == "" {
		return nil, user.ErrInvalidEmail
	}

	name := identity.Name
	if name == "" {
		name = user.DefaultName
	}

	// Upsert-on-first-use: a valid token is all it takes to exist
	u, err := s.userRepo.UpsertByEmail(ctx, identity.Email, name)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.RegisterUser(ctx, eventID, u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event registration confirmed",
		zap.Int("event_id", updated.ID),
		zap.Int("user_id", u.ID),
		zap.Int("registrations", updated.Registrations),
		zap.Int("max_participants", updated.MaxParticipants))

	return updated, nil
}

func (s *service) Search(ctx context.Context, query string) ([]Event, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]Event, 0)
	for _, e := range all {
		if matchesGlobalSearch(e, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
