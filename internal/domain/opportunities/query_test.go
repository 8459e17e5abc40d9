package opportunities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryFixtures() []Opportunity {
	return []Opportunity{
		{
			ID:       1,
			Title:    "Software Engineering Intern",
			Company:  "Google",
			Category: "internship",
			Skills:   []string{"Python", "Data Structures"},
		},
		{
			ID:       2,
			Title:    "Frontend Developer Intern",
			Company:  "Microsoft",
			Category: "internship",
			Skills:   []string{"React", "JavaScript", "CSS"},
		},
		{
			ID:       3,
			Title:    "Graduate Analyst",
			Company:  "Goldman Sachs",
			Category: "job",
			Skills:   []string{"Excel", "SQL"},
		},
	}
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []int
	}{
		{
			name:     "Empty filter keeps everything",
			filter:   Filter{},
			expected: []int{1, 2, 3},
		},
		{
			name:     "Category literal all is a no-op",
			filter:   Filter{Category: "all"},
			expected: []int{1, 2, 3},
		},
		{
			name:     "Category exact match",
			filter:   Filter{Category: "job"},
			expected: []int{3},
		},
		{
			name:     "Company substring is case-insensitive",
			filter:   Filter{Company: "gold"},
			expected: []int{3},
		},
		{
			name:     "Search matches title",
			filter:   Filter{Search: "frontend"},
			expected: []int{2},
		},
		{
			name:     "Search matches company",
			filter:   Filter{Search: "google"},
			expected: []int{1},
		},
		{
			name:     "Search matches listed skills",
			filter:   Filter{Search: "react"},
			expected: []int{2},
		},
		{
			name:     "Search misses",
			filter:   Filter{Search: "blockchain"},
			expected: []int{},
		},
		{
			name:     "Company and search compose",
			filter:   Filter{Company: "o", Search: "sql"},
			expected: []int{3},
		},
		{
			name:     "Limit truncates after filtering",
			filter:   Filter{Category: "internship", Limit: 1},
			expected: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(queryFixtures(), tt.filter)
			ids := make([]int, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
