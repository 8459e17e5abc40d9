package memory

import (
	"context"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
)

type skillRepository struct {
	store *Store
}

// NewSkillRepository creates a skills repository over the catalog store
func NewSkillRepository(store *Store) skills.Repository {
	return &skillRepository{store: store}
}

func (r *skillRepository) FindAll(ctx context.Context) ([]skills.Skill, error) {
	var out []skills.Skill
	r.store.View(func(d *Data) {
		out = make([]skills.Skill, 0, len(d.Skills))
		for _, s := range d.Skills {
			out = append(out, *s)
		}
	})
	return out, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id int) (*skills.Skill, error) {
	var found *skills.Skill
	r.store.View(func(d *Data) {
		for _, s := range d.Skills {
			if s.ID == id {
				copied := *s
				found = &copied
				return
			}
		}
	})
	if found == nil {
		return nil, skills.ErrSkillNotFound
	}
	return found, nil
}

func (r *skillRepository) Count(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.Skills)
	})
	return n, nil
}
