package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryFixtures() []Skill {
	return []Skill{
		{ID: 1, Name: "Machine Learning", Category: "ai-ml", Description: "Build intelligent systems"},
		{ID: 2, Name: "React Development", Category: "web-dev", Description: "Modern frontend engineering"},
		{ID: 3, Name: "Data Visualization", Category: "data-science", Description: "Tell stories with charts"},
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
			filter:   Filter{Category: "web-dev"},
			expected: []int{2},
		},
		{
			name:     "Search matches name",
			filter:   Filter{Search: "machine"},
			expected: []int{1},
		},
		{
			name:     "Search matches description",
			filter:   Filter{Search: "charts"},
			expected: []int{3},
		},
		{
			name:     "Limit truncates",
			filter:   Filter{Limit: 2},
			expected: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(queryFixtures(), tt.filter)
			ids := make([]int, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
