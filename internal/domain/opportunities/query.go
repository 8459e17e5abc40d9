package opportunities

import "strings"

// Filter narrows an opportunity listing. Company is matched by
// substring independently of Search; both may be active at once.
type Filter struct {
	Category string
	Company  string
	Search   string
	Limit    int
}

// ApplyFilter evaluates the filter over a snapshot of the catalog,
// preserving insertion order. It never mutates its input.
func ApplyFilter(snapshot []Opportunity, f Filter) []Opportunity {
	out := make([]Opportunity, 0, len(snapshot))
	company := strings.ToLower(f.Company)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, o := range snapshot {
		if f.Category != "" && f.Category != "all" && o.Category != f.Category {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(o.Company), company) {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		out = append(out, o)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// matchesSearch covers title, company and every listed skill
func matchesSearch(o Opportunity, query string) bool {
	if strings.Contains(strings.ToLower(o.Title), query) ||
		strings.Contains(strings.ToLower(o.Company), query) {
		return true
	}
	for _, skill := range o.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}
