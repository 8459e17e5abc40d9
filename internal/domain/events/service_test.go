package events

import (
	"context"
	"testing"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEventRepo struct {
	events     []Event
	registered map[int][]int
}

func (r *stubEventRepo) FindAll(ctx context.Context) ([]Event, error) {
	return r.events, nil
}

func (r *stubEventRepo) FindByID(ctx context.Context, id int) (*Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, ErrEventNotFound
}

func (r *stubEventRepo) RegisterUser(ctx context.Context, eventID, userID int) (*Event, error) {
	for i := range r.events {
		if r.events[i].ID == eventID {
			r.events[i].Registrations++
			if r.registered == nil {
				r.registered = make(map[int][]int)
			}
			r.registered[eventID] = append(r.registered[eventID], userID)
			copied := r.events[i]
			return &copied, nil
		}
	}
	return nil, ErrEventNotFound
}

func (r *stubEventRepo) Count(ctx context.Context) (int, error) {
	return len(r.events), nil
}

type stubUserRepo struct {
	users  []user.User
	nextID int
}

func (r *stubUserRepo) FindAll(ctx context.Context) ([]user.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepo) UpsertByEmail(ctx context.Context, email, name string) (*user.User, error) {
	if existing, err := r.FindByEmail(ctx, email); err == nil {
		return existing, nil
	}
	if r.nextID == 0 {
		r.nextID = len(r.users) + 1
	}
	created := user.User{ID: r.nextID, Email: email, Name: name, RegisteredEvents: []int{}}
	r.nextID++
	r.users = append(r.users, created)
	return &created, nil
}

func (r *stubUserRepo) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}

func TestListRegistered(t *testing.T) {
	ctx := context.Background()
	repo := &stubEventRepo{events: []Event{
		{ID: 1, Title: "Hackathon", Category: CategoryHackathons},
		{ID: 2, Title: "Workshop", Category: CategoryWorkshops},
	}}
	users := &stubUserRepo{users: []user.User{
		{ID: 1, Email: "alice@example.com", RegisteredEvents: []int{2}},
	}}
	svc := NewService(repo, users, zap.NewNop())

	t.Run("Unknown caller has no registrations", func(t *testing.T) {
		list, err := svc.ListRegistered(ctx, "ghost@example.com", Filter{})
		require.NoError(t, err)
		assert.Equal(t, []Event{}, list)
	})

	t.Run("Returns only the caller's events", func(t *testing.T) {
		list, err := svc.ListRegistered(ctx, "alice@example.com", Filter{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 2, list[0].ID)
	})

	t.Run("Tab filter is ignored for the registered view", func(t *testing.T) {
		list, err := svc.ListRegistered(ctx, "alice@example.com", Filter{Tab: TabInternships})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestRegisterProvisionsUser(t *testing.T) {
	ctx := context.Background()
	repo := &stubEventRepo{events: []Event{
		{ID: 1, Title: "Hackathon", Category: CategoryHackathons, MaxParticipants: 10},
	}}
	users := &stubUserRepo{}
	svc := NewService(repo, users, zap.NewNop())

	updated, err := svc.Register(ctx, 1, Identity{Email: "new@example.com", Name: "Newcomer"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registrations)

	provisioned, err := users.FindByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Newcomer", provisioned.Name)
}

func TestRegisterRequiresEmail(t *testing.T) {
	svc := NewService(&stubEventRepo{}, &stubUserRepo{}, zap.NewNop())

	_, err := svc.Register(context.Background(), 1, Identity{})
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestSearchIncludesDescription(t *testing.T) {
	ctx := context.Background()
	repo := &stubEventRepo{events: []Event{
		{ID: 1, Title: "Hackathon", Description: "Build a fintech prototype"},
		{ID: 2, Title: "Workshop", Description: "Intro session"},
	}}
	svc := NewService(repo, &stubUserRepo{}, zap.NewNop())

	list, err := svc.Search(ctx, "fintech")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)
}
