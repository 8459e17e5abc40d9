package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var queryNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func queryFixtures() []Event {
	return []Event{
		{
			ID:                   1,
			Title:                "Smart India Hackathon",
			Organizer:            "Government of India",
			Category:             CategoryHackathons,
			Mode:                 ModeHybrid,
			Domain:               "ai-ml",
			Difficulty:           DifficultyAdvanced,
			RegistrationDeadline: "2026-03-04T00:00:00Z",
		},
		{
			ID:                   2,
			Title:                "React Workshop",
			Organizer:            "Tech Club",
			Category:             CategoryWorkshops,
			Mode:                 ModeOnline,
			Domain:               "web-dev",
			Difficulty:           DifficultyBeginner,
			RegistrationDeadline: "2026-03-20T00:00:00Z",
		},
		{
			ID:                   3,
			Title:                "Summer Internship Drive",
			Organizer:            "Placement Cell",
			Category:             CategoryInternships,
			Mode:                 ModeOffline,
			Domain:               "finance",
			Difficulty:           DifficultyIntermediate,
			RegistrationDeadline: "2026-06-15T00:00:00Z",
		},
		{
			ID:                   4,
			Title:                "Design Sprint",
			Organizer:            "UX Society",
			Category:             CategoryCompetitions,
			Mode:                 ModeOnline,
			Domain:               "ui-ux",
			Difficulty:           DifficultyBeginner,
			RegistrationDeadline: "soon",
		},
		{
			ID:                   5,
			Title:                "Security CTF",
			Organizer:            "InfoSec Club",
			Category:             CategoryCompetitions,
			Mode:                 ModeOffline,
			Domain:               "cybersecurity",
			Difficulty:           DifficultyAdvanced,
			RegistrationDeadline: "2026-01-10T00:00:00Z",
		},
	}
}

func eventIDs(list []Event) []int {
	ids := make([]int, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []int
	}{
		{
			name:     "Empty filter keeps everything in order",
			filter:   Filter{},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "All tab keeps everything",
			filter:   Filter{Tab: TabAll},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "Workshops tab narrows to workshop category",
			filter:   Filter{Tab: TabWorkshops},
			expected: []int{2},
		},
		{
			name:     "Internships tab narrows to internship category",
			filter:   Filter{Tab: TabInternships},
			expected: []int{3},
		},
		{
			name:     "Skills tab uses the domain allowlist",
			filter:   Filter{Tab: TabSkills},
			expected: []int{1, 2, 4, 5},
		},
		{
			name:     "Unknown tab restricts nothing",
			filter:   Filter{Tab: "Webinars"},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "Category literal all is a no-op",
			filter:   Filter{Category: "all"},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "Category exact match",
			filter:   Filter{Category: "competitions"},
			expected: []int{4, 5},
		},
		{
			name:     "Tab and category narrow independently",
			filter:   Filter{Tab: TabSkills, Category: "competitions"},
			expected: []int{4, 5},
		},
		{
			name:     "Mode filter",
			filter:   Filter{Mode: "online"},
			expected: []int{2, 4},
		},
		{
			name:     "Domain filter",
			filter:   Filter{Domain: "ai-ml"},
			expected: []int{1},
		},
		{
			name:     "Level filter",
			filter:   Filter{Level: "advanced"},
			expected: []int{1, 5},
		},
		{
			name:     "Search matches title case-insensitively",
			filter:   Filter{Search: "REACT"},
			expected: []int{2},
		},
		{
			name:     "Search matches organizer",
			filter:   Filter{Search: "placement"},
			expected: []int{3},
		},
		{
			name:     "Deadline this_week",
			filter:   Filter{Deadline: DeadlineThisWeek},
			expected: []int{1},
		},
		{
			name:     "Deadline this_month",
			filter:   Filter{Deadline: DeadlineThisMonth},
			expected: []int{1, 2},
		},
		{
			name:     "Deadline upcoming drops past and unparseable deadlines",
			filter:   Filter{Deadline: DeadlineUpcoming},
			expected: []int{1, 2, 3},
		},
		{
			name:     "No deadline predicate keeps unparseable deadlines",
			filter:   Filter{Mode: "online"},
			expected: []int{2, 4},
		},
		{
			name:     "Limit truncates after filtering",
			filter:   Filter{Tab: TabSkills, Limit: 2},
			expected: []int{1, 2},
		},
		{
			name:     "Limit larger than result set changes nothing",
			filter:   Filter{Limit: 50},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "All predicates compose",
			filter:   Filter{Tab: TabSkills, Mode: "offline", Level: "advanced"},
			expected: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(queryFixtures(), tt.filter, queryNow)
			assert.Equal(t, tt.expected, eventIDs(got))
		})
	}
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	filter := Filter{Tab: TabSkills, Deadline: DeadlineUpcoming}

	once := ApplyFilter(queryFixtures(), filter, queryNow)
	twice := ApplyFilter(once, filter, queryNow)

	assert.Equal(t, once, twice)
}

func TestApplyFilterDoesNotMutateSnapshot(t *testing.T) {
	snapshot := queryFixtures()
	before := eventIDs(snapshot)

	ApplyFilter(snapshot, Filter{Category: "workshops", Limit: 1}, queryNow)

	assert.Equal(t, before, eventIDs(snapshot))
}

func TestDeadlineTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"RFC3339", "2026-03-04T00:00:00Z", true},
		{"Date only", "2026-03-04", true},
		{"No zone", "2026-03-04T10:30:00", true},
		{"Garbage", "soon", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{RegistrationDeadline: tt.raw}
			_, ok := e.DeadlineTime()
			assert.Equal(t, tt.ok, ok)
		})
	}
}
