package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Seed())

	store.View(func(d *Data) {
		assert.Len(t, d.Events, 5)
		assert.Len(t, d.Opportunities, 5)
		assert.Len(t, d.Skills, 6)
		assert.Len(t, d.Users, 1)
		assert.Len(t, d.Posts, 2)
		assert.Len(t, d.StudyGroups, 2)

		// Provisioned users must not collide with seeded ids
		assert.Equal(t, 2, d.NextUserID)

		for _, e := range d.Events {
			assert.NoError(t, e.Validate(), "seed event %d must validate", e.ID)
		}
	})
}
