package memory

import (
	"context"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository creates an events repository over the catalog store
func NewEventRepository(store *Store) events.Repository {
	return &eventRepository{store: store}
}

// FindAll returns a value-copy snapshot so callers can filter freely
// without touching the stored records
func (r *eventRepository) FindAll(ctx context.Context) ([]events.Event, error) {
	var out []events.Event
	r.store.View(func(d *Data) {
		out = make([]events.Event, 0, len(d.Events))
		for _, e := range d.Events {
			out = append(out, *e)
		}
	})
	return out, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id int) (*events.Event, error) {
	var found *events.Event
	r.store.View(func(d *Data) {
		for _, e := range d.Events {
			if e.ID == id {
				copied := *e
				found = &copied
				return
			}
		}
	})
	if found == nil {
		return nil, events.ErrEventNotFound
	}
	return found, nil
}

// RegisterUser performs the duplicate check, the capacity check, the
// counter increment and the registration append as one critical
// section. Two racing registrations for the same spot serialize here,
// so Registrations can never exceed MaxParticipants.
func (r *eventRepository) RegisterUser(ctx context.Context, eventID, userID int) (*events.Event, error) {
	var updated *events.Event
	err := r.store.Update(func(d *Data) error {
		var event *events.Event
		for _, e := range d.Events {
			if e.ID == eventID {
				event = e
				break
			}
		}
		if event == nil {
			return events.ErrEventNotFound
		}

		var registrant *user.User
		for _, u := range d.Users {
			if u.ID == userID {
				registrant = u
				break
			}
		}
		if registrant == nil {
			return user.ErrUserNotFound
		}

		if registrant.HasRegistered(eventID) {
			return events.ErrAlreadyRegistered
		}
		if event.IsFull() {
			return events.ErrEventFull
		}

		event.Registrations++
		registrant.RegisteredEvents = append(registrant.RegisteredEvents, eventID)

		copied := *event
		updated = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.Events)
	})
	return n, nil
}
