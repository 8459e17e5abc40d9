package skills

import "strings"

// Filter narrows a skill listing. Zero values (and the literal "all")
// disable the corresponding predicate.
type Filter struct {
	Category string
	Search   string
	Limit    int
}

// ApplyFilter evaluates the filter over a snapshot of the catalog,
// preserving insertion order. It never mutates its input.
func ApplyFilter(snapshot []Skill, f Filter) []Skill {
	out := make([]Skill, 0, len(snapshot))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, s := range snapshot {
		if f.Category != "" && f.Category != "all" && s.Category != f.Category {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		out = append(out, s)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func matchesSearch(s Skill, query string) bool {
	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Description), query)
}
