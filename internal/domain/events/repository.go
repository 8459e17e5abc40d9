package events

import "context"

// Repository is the catalog-store port for events. The in-memory
// implementation lives in internal/infrastructure/persistence/memory.
type Repository interface {
	FindAll(ctx context.Context) ([]Event, error)
	FindByID(ctx context.Context, id int) (*Event, error)
	// RegisterUser runs the registration's read-modify-write (duplicate
	// check, capacity check, counter increment, registration append) as
	// one unit under the store's write lock. It returns the updated
	// event or ErrEventNotFound / ErrAlreadyRegistered / ErrEventFull.
	RegisterUser(ctx context.Context, eventID, userID int) (*Event, error)
	Count(ctx context.Context) (int, error)
}
