package events

import (
	"errors"
	"time"
)

// Category groups events by format
type Category string

const (
	CategoryHackathons    Category = "hackathons"
	CategoryWorkshops     Category = "workshops"
	CategoryCompetitions  Category = "competitions"
	CategoryCollegeEvents Category = "college-events"
	CategoryWebinars      Category = "webinars"
	CategoryInternships   Category = "internships"
)

// Mode describes how the event is attended
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Difficulty is the expected participant level
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Event is a single catalog event. Older front-end builds still read
// Date/Type/Tags/Skills, so those stay alongside the newer structured
// fields instead of being folded into them.
//
// EventDate and RegistrationDeadline are kept as the raw strings the
// seed/clients supply; an unparseable value is treated as "no deadline"
// wherever a date predicate applies.
type Event struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Date                 string     `json:"date,omitempty"`
	Type                 string     `json:"type,omitempty"`
	Rules                []string   `json:"rules,omitempty"`
	Timeline             []string   `json:"timeline,omitempty"`
	Category             Category   `json:"category"`
	Mode                 Mode       `json:"mode"`
	Domain               string     `json:"domain"`
	Difficulty           Difficulty `json:"difficulty"`
	EventDate            string     `json:"eventDate"`
	RegistrationDeadline string     `json:"registrationDeadline"`
	Prize                string     `json:"prize,omitempty"`
	Organizer            string     `json:"organizer"`
	RequiredSkills       []string   `json:"requiredSkills"`
	Registrations        int        `json:"registrations"`
	MaxParticipants      int        `json:"maxParticipants"`
	Location             string     `json:"location,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Skills               []string   `json:"skills,omitempty"`
}

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event is full")
	ErrInvalidEvent      = errors.New("invalid event")
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHackathons, CategoryWorkshops, CategoryCompetitions,
		CategoryCollegeEvents, CategoryWebinars, CategoryInternships:
		return true
	}
	return false
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Validate checks event data at ingestion time. Seeded and created
// records go through here once so read paths can trust the shape.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrInvalidEvent
	}
	if !e.Category.IsValid() {
		return ErrInvalidEvent
	}
	if !e.Mode.IsValid() {
		return ErrInvalidEvent
	}
	if !e.Difficulty.IsValid() {
		return ErrInvalidEvent
	}
	if e.MaxParticipants < 0 || e.Registrations < 0 || e.Registrations > e.MaxParticipants {
		return ErrInvalidEvent
	}
	return nil
}

// IsFull reports whether the event reached capacity
func (e *Event) IsFull() bool {
	return e.Registrations >= e.MaxParticipants
}

// DeadlineTime parses the registration deadline. ok is false when the
// raw value does not parse as a timestamp.
func (e *Event) DeadlineTime() (time.Time, bool) {
	return parseTimestamp(e.RegistrationDeadline)
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
