package memory

import (
	"context"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the catalog store
func NewUserRepository(store *Store) user.Repository {
	return &userRepository{store: store}
}

func (r *userRepository) FindAll(ctx context.Context) ([]user.User, error) {
	var out []user.User
	r.store.View(func(d *Data) {
		out = make([]user.User, 0, len(d.Users))
		for _, u := range d.Users {
			out = append(out, *u)
		}
	})
	return out, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var found *user.User
	r.store.View(func(d *Data) {
		for _, u := range d.Users {
			if u.Email == email {
				copied := *u
				found = &copied
				return
			}
		}
	})
	if found == nil {
		return nil, user.ErrUserNotFound
	}
	return found, nil
}

// UpsertByEmail is atomic: concurrent first requests for the same email
// resolve to a single record.
func (r *userRepository) UpsertByEmail(ctx context.Context, email, name string) (*user.User, error) {
	if email == "" {
		return nil, user.ErrInvalidEmail
	}
	if name == "" {
		name = user.DefaultName
	}

	var resolved user.User
	err := r.store.Update(func(d *Data) error {
		for _, u := range d.Users {
			if u.Email == email {
				resolved = *u
				return nil
			}
		}

		created := &user.User{
			ID:               d.AllocateUserID(),
			Name:             name,
			Email:            email,
			Role:             "user",
			RegisteredEvents: []int{},
		}
		d.Users = append(d.Users, created)
		resolved = *created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.Users)
	})
	return n, nil
}
