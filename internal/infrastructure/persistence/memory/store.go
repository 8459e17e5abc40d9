// Package memory is the catalog store: every collection the API serves
// lives in this one process-lifetime structure. There is no durability;
// a restart starts over from the seed.
package memory

import (
	"sync"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
)

// Data holds every catalog collection. Records are kept in insertion
// order; nothing is ever deleted. NextUserID is the monotonic id source
// for provisioned users.
type Data struct {
	Events        []*events.Event
	Opportunities []*opportunities.Opportunity
	Skills        []*skills.Skill
	Users         []*user.User
	Posts         []*community.Post
	StudyGroups   []*community.StudyGroup
	NextUserID    int
}

// Store owns the catalog. One RWMutex guards all collections:
// coarse, but registration needs the user and event collections to
// move together and the whole catalog fits in cache anyway.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{data: Data{NextUserID: 1}}
}

// View runs fn with shared (read) access to the catalog. fn must not
// retain or mutate anything it is handed.
func (s *Store) View(fn func(*Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn with exclusive access to the catalog. Everything fn
// does is atomic with respect to every other View/Update.
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// AllocateUserID hands out the next user id. Callers must already hold
// the write lock (i.e. run inside Update).
func (d *Data) AllocateUserID() int {
	id := d.NextUserID
	d.NextUserID++
	return id
}
