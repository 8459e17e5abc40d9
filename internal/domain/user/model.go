package user

import "errors"

// DefaultName is used when the identity provider supplies no display name
const DefaultName = "User"

// DefaultRating backfills users that never received a rating
const DefaultRating = 4.5

// User represents a member of the platform. Email is the natural key:
// authenticated callers are resolved (or created) by email, never by id.
type User struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Role                 string   `json:"role,omitempty"`
	Skills               []string `json:"skills,omitempty"`
	Rating               float64  `json:"rating,omitempty"`
	AppliedOpportunities []int    `json:"appliedOpportunities,omitempty"`
	RegisteredEvents     []int    `json:"registeredEvents"`
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidEmail = errors.New("user must have an email")
)

// HasRegistered reports whether the user already holds a registration
// for the given event. RegisteredEvents keeps set semantics: ordered,
// no duplicates.
func (u *User) HasRegistered(eventID int) bool {
	for _, id := range u.RegisteredEvents {
		if id == eventID {
			return true
		}
	}
	return false
}
