package events

import (
	"math"
	"sort"
	"strings"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
)

// maxMatches caps the match list at the strongest candidates
const maxMatches = 5

// Match is one user's compatibility with an event's required skills
type Match struct {
	UserID         int      `json:"userId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Skills         []string `json:"skills"`
	MatchingSkills []string `json:"matchingSkills"`
	Compatibility  int      `json:"compatibility"`
	Rating         float64  `json:"rating"`
}

// MatchResult is the full response for an event's match listing
type MatchResult struct {
	EventID        int      `json:"eventId"`
	RequiredSkills []string `json:"requiredSkills"`
	Matches        []Match  `json:"matches"`
}

// MatchUsers scores every user against the event's required skills.
// Skill membership is case-insensitive but matching skills keep the
// casing and order of the event's requirement list. Users scoring zero
// are dropped; the rest are sorted by compatibility (stable, so equal
// scores keep user order) and truncated to the top five.
//
// An event with no required skills divides by one instead of zero; the
// resulting percentages are meaningless but harmless, which mirrors the
// shipped behavior.
func MatchUsers(event *Event, users []user.User) MatchResult {
	required := event.RequiredSkills
	if required == nil {
		required = []string{}
	}
	divisor := len(required)
	if divisor == 0 {
		divisor = 1
	}

	matches := make([]Match, 0, len(users))
	for _, u := range users {
		matching := intersectSkills(required, u.Skills)
		compatibility := int(math.Round(float64(len(matching)) / float64(divisor) * 100))
		if compatibility == 0 {
			continue
		}

		rating := u.Rating
		if rating == 0 {
			rating = user.DefaultRating
		}

		matches = append(matches, Match{
			UserID:         u.ID,
			Name:           u.Name,
			Email:          u.Email,
			Skills:         u.Skills,
			MatchingSkills: matching,
			Compatibility:  compatibility,
			Rating:         rating,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Compatibility > matches[j].Compatibility
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return MatchResult{
		EventID:        event.ID,
		RequiredSkills: required,
		Matches:        matches,
	}
}

// intersectSkills returns the required skills the user holds,
// preserving the requirement list's casing and order
func intersectSkills(required, held []string) []string {
	heldSet := make(map[string]bool, len(held))
	for _, s := range held {
		heldSet[strings.ToLower(s)] = true
	}

	out := make([]string, 0, len(required))
	for _, s := range required {
		if heldSet[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}
