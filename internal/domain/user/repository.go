package user

import "context"

// Repository is the catalog-store port for users. The in-memory
// implementation lives in internal/infrastructure/persistence/memory.
type Repository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// UpsertByEmail resolves the user with the given email, creating a
	// fresh record (new id, empty registrations) when none exists.
	UpsertByEmail(ctx context.Context, email, name string) (*User, error)
	Count(ctx context.Context) (int, error)
}
