package company

import (
	"context"
)

// Repository defines persistence operations for the tenant registry, which
// lives in the public schema.
type Repository interface {
	// Create registers the company, creates its schema and applies the tenant
	// migrations to it. A schema failure rolls the registry row back.
	Create(ctx context.Context, c *Company) error

	// FindByID fetches a company by id
	FindByID(ctx context.Context, id string) (*Company, error)

	// List returns a page of companies
	List(ctx context.Context, limit, offset int) ([]*Company, error)

	// Count returns the total number of companies
	Count(ctx context.Context) (int, error)

	// Deactivate soft-deletes a company; its schema stays in place
	Deactivate(ctx context.Context, id string) error
}
