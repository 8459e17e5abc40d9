package opportunities

import "context"

// Repository is the catalog-store port for opportunities
type Repository interface {
	FindAll(ctx context.Context) ([]Opportunity, error)
	FindByID(ctx context.Context, id int) (*Opportunity, error)
	// IncrementApplicants bumps the applicant counter atomically and
	// returns the updated record
	IncrementApplicants(ctx context.Context, id int) (*Opportunity, error)
	Count(ctx context.Context) (int, error)
}
