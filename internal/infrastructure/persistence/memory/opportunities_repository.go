package memory

import (
	"context"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
)

type opportunityRepository struct {
	store *Store
}

// NewOpportunityRepository creates an opportunities repository over the
// catalog store
func NewOpportunityRepository(store *Store) opportunities.Repository {
	return &opportunityRepository{store: store}
}

func (r *opportunityRepository) FindAll(ctx context.Context) ([]opportunities.Opportunity, error) {
	var out []opportunities.Opportunity
	r.store.View(func(d *Data) {
		out = make([]opportunities.Opportunity, 0, len(d.Opportunities))
		for _, o := range d.Opportunities {
			out = append(out, *o)
		}
	})
	return out, nil
}

func (r *opportunityRepository) FindByID(ctx context.Context, id int) (*opportunities.Opportunity, error) {
	var found *opportunities.Opportunity
	r.store.View(func(d *Data) {
		for _, o := range d.Opportunities {
			if o.ID == id {
				copied := *o
				found = &copied
				return
			}
		}
	})
	if found == nil {
		return nil, opportunities.ErrOpportunityNotFound
	}
	return found, nil
}

func (r *opportunityRepository) IncrementApplicants(ctx context.Context, id int) (*opportunities.Opportunity, error) {
	var updated *opportunities.Opportunity
	err := r.store.Update(func(d *Data) error {
		for _, o := range d.Opportunities {
			if o.ID == id {
				o.Applicants++
				copied := *o
				updated = &copied
				return nil
			}
		}
		return opportunities.ErrOpportunityNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *opportunityRepository) Count(ctx context.Context) (int, error) {
	var n int
	r.store.View(func(d *Data) {
		n = len(d.Opportunities)
	})
	return n, nil
}
