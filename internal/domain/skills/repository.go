package skills

import "context"

// Repository is the catalog-store port for skills reference data
type Repository interface {
	FindAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id int) (*Skill, error)
	Count(ctx context.Context) (int, error)
}
