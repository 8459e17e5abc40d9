package events

import (
	"strings"
	"time"
)

// Tab values understood by the events listing. "My Events" is not a
// predicate here: the authenticated /api/events/my endpoint handles it.
const (
	TabAll         = "All"
	TabWorkshops   = "Workshops"
	TabInternships = "Internships"
	TabSkills      = "Skills"
	TabMyEvents    = "My Events"
)

// Deadline filter windows
const (
	DeadlineThisWeek  = "this_week"
	DeadlineThisMonth = "this_month"
	DeadlineUpcoming  = "upcoming"
)

// skillDomains is the domain allowlist behind the "Skills" tab. The
// list is literal: adding a new skill domain to the catalog does not
// widen this tab until the list is updated.
var skillDomains = map[string]bool{
	"ai-ml":         true,
	"web-dev":       true,
	"data-science":  true,
	"ui-ux":         true,
	"cybersecurity": true,
}

// Filter narrows an event listing. Every field is optional; an empty
// string (or the literal "all") disables that predicate. Tab and
// Category are independent narrowing predicates and may both apply.
type Filter struct {
	Tab      string
	Category string
	Mode     string
	Domain   string
	Level    string
	Deadline string
	Search   string
	Limit    int
}

// ApplyFilter evaluates the filter over a snapshot of the catalog at
// the given instant. Filtering is stable: surviving records keep their
// insertion order, and the snapshot itself is never mutated.
func ApplyFilter(snapshot []Event, f Filter, now time.Time) []Event {
	out := make([]Event, 0, len(snapshot))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	weekEnd := now.Add(7 * 24 * time.Hour)
	monthEnd := now.Add(30 * 24 * time.Hour)

	for _, e := range snapshot {
		if !matchesTab(e, f.Tab) {
			continue
		}
		if active(f.Category) && string(e.Category) != f.Category {
			continue
		}
		if active(f.Mode) && string(e.Mode) != f.Mode {
			continue
		}
		if active(f.Domain) && e.Domain != f.Domain {
			continue
		}
		if active(f.Level) && string(e.Difficulty) != f.Level {
			continue
		}
		if f.Deadline != "" && !matchesDeadline(e, f.Deadline, now, weekEnd, monthEnd) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// active reports whether an exact-match predicate is switched on
func active(value string) bool {
	return value != "" && value != "all"
}

func matchesTab(e Event, tab string) bool {
	switch tab {
	case "", TabAll, TabMyEvents:
		return true
	case TabWorkshops:
		return e.Category == CategoryWorkshops
	case TabInternships:
		return e.Category == CategoryInternships
	case TabSkills:
		return skillDomains[e.Domain]
	}
	// Unknown tabs restrict nothing
	return true
}

// matchesDeadline applies the deadline window. Records whose deadline
// does not parse are excluded whenever this predicate is active.
func matchesDeadline(e Event, deadline string, now, weekEnd, monthEnd time.Time) bool {
	t, ok := e.DeadlineTime()
	if !ok {
		return false
	}

	switch deadline {
	case DeadlineThisWeek:
		return !t.Before(now) && !t.After(weekEnd)
	case DeadlineThisMonth:
		return !t.Before(now) && !t.After(monthEnd)
	case DeadlineUpcoming:
		return !t.Before(now)
	}
	return true
}

// matchesSearch covers title and organizer
func matchesSearch(e Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Organizer), query)
}

// matchesGlobalSearch additionally covers the description; the
// cross-content /api/search endpoint casts the wider net.
func matchesGlobalSearch(e Event, query string) bool {
	return matchesSearch(e, query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}
